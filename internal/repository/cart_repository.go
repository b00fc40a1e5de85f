package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistroboss/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	// List returns the cart items of email, or every cart item when email is empty.
	List(ctx context.Context, email string) ([]model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) (*model.InsertResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type cartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository builds a MongoDB-backed repository.
func NewCartRepository(db *mongo.Database) CartRepository {
	return &cartRepository{collection: db.Collection(CartCollection)}
}

func (r *cartRepository) List(ctx context.Context, email string) ([]model.CartItem, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	return findAll[model.CartItem](ctx, r.collection, filter)
}

func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) (*model.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return insertResult(res), nil
}

func (r *cartRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}
	return deleteResult(res), nil
}
