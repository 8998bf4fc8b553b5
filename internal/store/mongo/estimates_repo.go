package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
)

type EstimateRepo struct {
	coll      *mongo.Collection
	opTimeout time.Duration
}

func NewEstimateRepo(client *MongoClient, opTimeout time.Duration) *EstimateRepo {
	return &EstimateRepo{
		coll:      client.DB.Collection(collEstimates),
		opTimeout: opTimeout,
	}
}

func (r *EstimateRepo) Create(ctx context.Context, e core.Estimate) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, toEstimateDoc(e))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: estimate %s already exists", core.ErrConflict, e.ID)
		}
		return fmt.Errorf("insert estimate: %w", err)
	}
	return nil
}

func (r *EstimateRepo) Get(ctx context.Context, id string) (core.Estimate, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc estimateDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return core.Estimate{}, core.ErrEstimateNotFound
		}
		return core.Estimate{}, fmt.Errorf("find estimate: %w", err)
	}
	return doc.toEstimate(), nil
}

func (r *EstimateRepo) FindRecent(ctx context.Context, limit int) ([]core.Estimate, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent estimates: %w", err)
	}
	defer cur.Close(ctx)

	var out []core.Estimate
	for cur.Next(ctx) {
		var doc estimateDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode estimate: %w", err)
		}
		out = append(out, doc.toEstimate())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate estimates: %w", err)
	}
	return out, nil
}

func (r *EstimateRepo) ExpireEstimates(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx,
		bson.M{
			"status":     core.EstimateStatusActive,
			"expires_at": bson.M{"$lt": before},
		},
		bson.M{"$set": bson.M{"status": core.EstimateStatusExpired}},
	)
	if err != nil {
		return 0, fmt.Errorf("expire estimates: %w", err)
	}
	return res.ModifiedCount, nil
}
