package service

import (
	"context"
	"log"
	"sync"
	"time"

	"bistroboss/internal/model"
	"bistroboss/internal/repository"
)

const (
	auditBatchSize     = 10
	auditFlushInterval = time.Second
	auditQueueSize     = 100
)

// PaymentAuditor writes payment log entries in the background, batching them.
// A nil *PaymentAuditor discards entries.
type PaymentAuditor struct {
	repo    repository.PaymentLogRepository
	entries chan model.PaymentLog
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewPaymentAuditor starts the background writer.
func NewPaymentAuditor(repo repository.PaymentLogRepository) *PaymentAuditor {
	a := &PaymentAuditor{
		repo:    repo,
		entries: make(chan model.PaymentLog, auditQueueSize),
		done:    make(chan struct{}),
	}
	go a.logWorker(context.Background())
	return a
}

// Record queues an entry. When the queue is full the entry is written synchronously.
func (a *PaymentAuditor) Record(ctx context.Context, entry model.PaymentLog) {
	if a == nil {
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}

	select {
	case a.entries <- entry:
	default:
		if err := a.repo.Create(ctx, &entry); err != nil {
			log.Printf("payment audit: write %s entry: %v", entry.Kind, err)
		}
	}
}

// Close stops accepting entries and waits for queued ones to be flushed.
func (a *PaymentAuditor) Close() {
	if a == nil {
		return
	}
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	close(a.entries)
	a.mu.Unlock()

	<-a.done
}

func (a *PaymentAuditor) logWorker(ctx context.Context) {
	defer close(a.done)

	batch := make([]model.PaymentLog, 0, auditBatchSize)
	ticker := time.NewTicker(auditFlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := a.repo.CreateBatch(ctx, batch); err != nil {
			log.Printf("payment audit: write batch of %d: %v", len(batch), err)
		}
		batch = make([]model.PaymentLog, 0, auditBatchSize)
	}

	for {
		select {
		case entry, ok := <-a.entries:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= auditBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
