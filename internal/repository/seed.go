package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedDocuments loads documents into a collection. Documents carrying an _id replace the
// stored document with that _id (inserting it when absent), others are inserted.
// The _id is stored as given, so string ids stay strings.
func SeedDocuments(ctx context.Context, db *mongo.Database, collection string, docs []bson.M) (seeded int, updated int, err error) {
	coll := db.Collection(collection)
	for i, doc := range docs {
		id, ok := doc["_id"]
		if !ok {
			if _, err := coll.InsertOne(ctx, doc); err != nil {
				return seeded, updated, fmt.Errorf("insert %s document %d: %w", collection, i, err)
			}
			seeded++
			continue
		}

		res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return seeded, updated, fmt.Errorf("upsert %s document %v: %w", collection, id, err)
		}
		if res.UpsertedCount > 0 {
			seeded++
		} else {
			updated++
		}
	}
	return seeded, updated, nil
}
