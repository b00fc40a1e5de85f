package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "bistroboss/internal/errors"
	"bistroboss/internal/model"
)

// Collection names inside the bistro database.
const (
	MenuCollection    = "menu"
	ReviewCollection  = "reviews"
	CartCollection    = "carts"
	UserCollection    = "users"
	PaymentCollection = "payments"
)

// EnsureIndexes creates the lookup indexes used by the email filters.
// None of them is unique.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{UserCollection, CartCollection, PaymentCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1"),
		})
		if err != nil {
			return fmt.Errorf("create %s email index: %w", name, err)
		}
	}
	return nil
}

func objectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", hex, apperrors.ErrInvalidID)
	}
	return id, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return results, nil
}

func insertResult(res *mongo.InsertOneResult) *model.InsertResult {
	return &model.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) *model.UpdateResult {
	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func deleteResult(res *mongo.DeleteResult) *model.DeleteResult {
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
