package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus represents the fulfilment status of a payment.
type PaymentStatus string

// PaymentStatusPending is assigned to payments recorded without a status.
const PaymentStatusPending PaymentStatus = "pending"

// Payment is the record a client submits after confirming a charge intent.
// CartIDs drives the cart cleanup that follows the insert.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Date          time.Time          `json:"date" bson:"date"`
	CartIDs       []string           `json:"cartIds" bson:"cartIds"`
	MenuItemIDs   []string           `json:"menuItemIds" bson:"menuItemIds"`
	Status        PaymentStatus      `json:"status" bson:"status"`
}
