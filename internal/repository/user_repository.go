package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistroboss/internal/model"
)

// ErrUserExists is returned by Create when a user with the same email is already stored.
var ErrUserExists = errors.New("user already exists")

// UserRepository defines user persistence operations.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	// FindByEmail returns nil and no error when no user has the email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Create inserts the user unless one with the same email exists.
	// The check and the insert are two separate round trips; concurrent creates can both pass.
	Create(ctx context.Context, user *model.User) (*model.InsertResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
	PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error)
}

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository builds a MongoDB-backed repository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection(UserCollection)}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	return findAll[model.User](ctx, r.collection, bson.M{})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.InsertResult, error) {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return insertResult(res), nil
}

func (r *userRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return deleteResult(res), nil
}

func (r *userRepository) PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"role": model.RoleAdmin}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}
	return updateResult(res), nil
}
