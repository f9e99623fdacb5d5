// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup for the Mongo backend. All declarations are
idempotent; the store's native query engine does the rest. No index logic
lives anywhere else.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	return ensureRegistrations(ctx, db)
}

func ensureRegistrations(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("registrations")

	specs := []mongo.IndexModel{
		// Dedup lookups: field value bounded by a created_at window.
		{Keys: bson.D{{Key: "phone", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "created_at", Value: -1}}},
		// Listing: newest first.
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		// Status filter in the admin list.
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	names, err := coll.Indexes().CreateMany(ctx, specs)
	if err != nil {
		return err
	}
	zap.L().Info("registration indexes ensured", zap.Strings("indexes", names))
	return nil
}
