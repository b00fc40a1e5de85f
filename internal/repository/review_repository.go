package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistroboss/internal/model"
)

// ReviewRepository defines review read operations.
type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error)
}

type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository builds a MongoDB-backed repository.
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{collection: db.Collection(ReviewCollection)}
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	return findAll[model.Review](ctx, r.collection, bson.M{})
}
