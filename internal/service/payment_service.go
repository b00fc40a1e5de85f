package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/internal/charge"
	"bistroboss/internal/errors"
	"bistroboss/internal/model"
	"bistroboss/internal/notify"
	"bistroboss/internal/repository"
)

const notifyTimeout = 10 * time.Second

// PaymentService handles the charge intent and payment record flow.
type PaymentService interface {
	// CreateChargeIntent stages a card charge for price and returns the provider's client secret.
	CreateChargeIntent(ctx context.Context, price float64) (string, error)
	// RecordPayment stores the payment and removes the cart items it paid for.
	RecordPayment(ctx context.Context, payment *model.Payment) (*model.PaymentRecordResult, error)
	ListPayments(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentService struct {
	repo     repository.PaymentRepository
	provider charge.Provider
	currency string
	auditor  *PaymentAuditor
	notifier notify.Notifier
}

// NewPaymentService creates a new payment service. auditor and notifier may be nil.
func NewPaymentService(
	repo repository.PaymentRepository,
	provider charge.Provider,
	currency string,
	auditor *PaymentAuditor,
	notifier notify.Notifier,
) PaymentService {
	return &paymentService{
		repo:     repo,
		provider: provider,
		currency: currency,
		auditor:  auditor,
		notifier: notifier,
	}
}

// ToMinorUnits converts a price into integer minor currency units as round(price * 100),
// computed in float64. 1.005 becomes 100 because 1.005 * 100 is 100.49999999999999.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (s *paymentService) CreateChargeIntent(ctx context.Context, price float64) (string, error) {
	amount := ToMinorUnits(price)
	if amount <= 0 {
		return "", errors.ErrInvalidAmount
	}

	entry := model.PaymentLog{
		Kind:        model.PaymentLogKindIntent,
		Amount:      decimal.NewFromFloat(price),
		AmountMinor: amount,
		Status:      model.PaymentLogStatusSucceeded,
	}

	intent, err := s.provider.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		entry.Status = model.PaymentLogStatusFailed
		entry.ErrorMessage = err.Error()
		s.auditor.Record(ctx, entry)
		return "", fmt.Errorf("%w: %v", errors.ErrChargeFailed, err)
	}

	entry.Reference = intent.ID
	s.auditor.Record(ctx, entry)
	return intent.ClientSecret, nil
}

func (s *paymentService) RecordPayment(ctx context.Context, payment *model.Payment) (*model.PaymentRecordResult, error) {
	if payment.Status == "" {
		payment.Status = model.PaymentStatusPending
	}

	entry := model.PaymentLog{
		Kind:        model.PaymentLogKindRecord,
		Email:       payment.Email,
		Amount:      decimal.NewFromFloat(payment.Price),
		AmountMinor: ToMinorUnits(payment.Price),
		Reference:   payment.TransactionID,
		Status:      model.PaymentLogStatusSucceeded,
	}

	result, err := s.repo.RecordAndClearCart(ctx, payment)
	if result != nil && result.PaymentResult != nil {
		if oid, ok := result.PaymentResult.InsertedID.(primitive.ObjectID); ok {
			entry.Reference = oid.Hex()
		}
	}
	if err != nil {
		entry.Status = model.PaymentLogStatusFailed
		entry.ErrorMessage = err.Error()
		s.auditor.Record(ctx, entry)
		return result, err
	}
	s.auditor.Record(ctx, entry)

	s.notify(payment)
	return result, nil
}

func (s *paymentService) ListPayments(ctx context.Context, email string) ([]model.Payment, error) {
	return s.repo.ListByEmail(ctx, email)
}

// notify sends the admin message in the background with its own deadline.
func (s *paymentService) notify(payment *model.Payment) {
	if s.notifier == nil {
		return
	}
	snapshot := *payment
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.PaymentRecorded(ctx, &snapshot); err != nil {
			log.Printf("payment notification for %s: %v", snapshot.Email, err)
		}
	}()
}
