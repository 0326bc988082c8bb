package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowfit/flowfit/internal/domain"
)

type MongoRatingRepository struct {
	collection *mongo.Collection
}

func NewMongoRatingRepository(db *mongo.Database) *MongoRatingRepository {
	coll := db.Collection("ratings")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// One rating per (user, session) pair
	coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.M{"session_id": 1}},
	})

	return &MongoRatingRepository{
		collection: coll,
	}
}

// Upsert writes the user's rating for a session, replacing any
// previous value. CreatedAt is only set on first insert.
func (r *MongoRatingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	now := time.Now()
	rating.UpdatedAt = now

	filter := bson.M{"user_id": rating.UserID, "session_id": rating.SessionID}
	update := bson.M{
		"$set": bson.M{
			"value":      rating.Value,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"user_id":    rating.UserID,
			"session_id": rating.SessionID,
			"created_at": now,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	return nil
}

func (r *MongoRatingRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.Rating, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ratings []*domain.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *MongoRatingRepository) GetByUserAndSession(ctx context.Context, userID, sessionID string) (*domain.Rating, error) {
	var rating domain.Rating
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "session_id": sessionID}).Decode(&rating)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *MongoRatingRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"session_id": sessionID})
	return err
}
