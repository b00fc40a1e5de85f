package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistroboss/internal/model"
)

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	// RecordAndClearCart inserts the payment and then removes every cart item named in
	// payment.CartIDs. The two writes are not transactional: when the delete fails the
	// payment stays recorded, and the returned result carries the insert outcome alongside the error.
	RecordAndClearCart(ctx context.Context, payment *model.Payment) (*model.PaymentRecordResult, error)
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentRepository struct {
	payments *mongo.Collection
	carts    *mongo.Collection
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{
		payments: db.Collection(PaymentCollection),
		carts:    db.Collection(CartCollection),
	}
}

// RecordAndClearCart validates every cart id before writing anything.
func (r *paymentRepository) RecordAndClearCart(ctx context.Context, payment *model.Payment) (*model.PaymentRecordResult, error) {
	cartIDs := make([]primitive.ObjectID, 0, len(payment.CartIDs))
	for _, hex := range payment.CartIDs {
		oid, err := objectID(hex)
		if err != nil {
			return nil, err
		}
		cartIDs = append(cartIDs, oid)
	}

	inserted, err := r.payments.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	result := &model.PaymentRecordResult{PaymentResult: insertResult(inserted)}

	deleted, err := r.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		return result, fmt.Errorf("clear paid cart items: %w", err)
	}
	result.DeleteResult = deleteResult(deleted)

	return result, nil
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return findAll[model.Payment](ctx, r.payments, bson.M{"email": email})
}
