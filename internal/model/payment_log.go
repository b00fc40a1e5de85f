package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentLogKind tells which step of the payment flow produced a log entry.
type PaymentLogKind string

const (
	PaymentLogKindIntent PaymentLogKind = "intent"
	PaymentLogKindRecord PaymentLogKind = "record"
)

// PaymentLogStatus is the outcome of the logged step.
type PaymentLogStatus string

const (
	PaymentLogStatusSucceeded PaymentLogStatus = "succeeded"
	PaymentLogStatusFailed    PaymentLogStatus = "failed"
)

// PaymentLog is an audit entry for a charge intent or payment record attempt.
// All attempts are logged regardless of success or failure.
type PaymentLog struct {
	ID           uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Kind         PaymentLogKind   `json:"kind" gorm:"type:varchar(10);not null;index"`
	Email        string           `json:"email,omitempty" gorm:"size:255;index"`
	Amount       decimal.Decimal  `json:"amount" gorm:"type:decimal(20,2);not null"`
	AmountMinor  int64            `json:"amount_minor" gorm:"not null"`
	Reference    string           `json:"reference,omitempty" gorm:"size:255;index"`
	Status       PaymentLogStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	ErrorMessage string           `json:"error_message,omitempty" gorm:"type:text"`
	CreatedAt    time.Time        `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (pl *PaymentLog) BeforeCreate(tx *gorm.DB) error {
	if pl.ID == uuid.Nil {
		pl.ID = uuid.New()
	}
	return nil
}
