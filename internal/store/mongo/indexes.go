package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the estimate queries depend on.
// Safe to call on every startup.
func (c *MongoClient) EnsureIndexes(ctx context.Context) error {
	estimates := c.DB.Collection(collEstimates)

	_, err := estimates.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "expires_at", Value: 1},
		}},
		{Keys: bson.D{{Key: "session_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create estimate indexes: %w", err)
	}
	return nil
}
