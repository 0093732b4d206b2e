package historyRepo

import (
	"context"
	"fmt"
	"time"

	"ecoscan/config"
	"ecoscan/database"
	"ecoscan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHistoryRepo implements HistoryRepository using MongoDB.
type MongoHistoryRepo struct {
	coll *mongo.Collection
}

// NewMongoHistoryRepo creates a new instance of HistoryRepository using MongoDB.
func NewMongoHistoryRepo() HistoryRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("history")
	repo := &MongoHistoryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes matching the listing queries.
func (r *MongoHistoryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "accountId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new history record.
func (r *MongoHistoryRepo) Create(record *models.HistoryRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to create history record: %w", err)
	}
	return nil
}

// ListByAccount retrieves the given account's records sorted by createdAt descending.
func (r *MongoHistoryRepo) ListByAccount(accountID string) ([]models.HistoryRecord, error) {
	return r.list(bson.M{"accountId": accountID})
}

// ListReports retrieves all report records sorted by createdAt descending.
func (r *MongoHistoryRepo) ListReports() ([]models.HistoryRecord, error) {
	return r.list(bson.M{"kind": models.KindReport})
}

func (r *MongoHistoryRepo) list(filter bson.M) ([]models.HistoryRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve history records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.HistoryRecord
	for cursor.Next(ctx) {
		var rec models.HistoryRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode history record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
