package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistroboss/internal/model"
)

// MenuRepository defines menu persistence operations.
type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	// FindByID returns nil and no error on a miss.
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error)
	Update(ctx context.Context, id string, fields bson.M) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type menuRepository struct {
	collection *mongo.Collection
}

// NewMenuRepository builds a MongoDB-backed repository.
func NewMenuRepository(db *mongo.Database) MenuRepository {
	return &menuRepository{collection: db.Collection(MenuCollection)}
}

// menuIDFilter matches a menu document by id. Seeded menu documents carry plain string ids
// while items created through the API get an ObjectID, so a hex id matches either form.
func menuIDFilter(id string) bson.M {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bson.M{"_id": id}
	}
	return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
}

func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	return findAll[model.MenuItem](ctx, r.collection, bson.M{})
}

func (r *menuRepository) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.collection.FindOne(ctx, menuIDFilter(id)).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return &item, nil
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return insertResult(res), nil
}

func (r *menuRepository) Update(ctx context.Context, id string, fields bson.M) (*model.UpdateResult, error) {
	res, err := r.collection.UpdateOne(ctx, menuIDFilter(id), bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return updateResult(res), nil
}

func (r *menuRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := r.collection.DeleteOne(ctx, menuIDFilter(id))
	if err != nil {
		return nil, fmt.Errorf("delete menu item: %w", err)
	}
	return deleteResult(res), nil
}
