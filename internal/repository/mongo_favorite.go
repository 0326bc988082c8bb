package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowfit/flowfit/internal/domain"
)

type MongoFavoriteRepository struct {
	collection *mongo.Collection
}

func NewMongoFavoriteRepository(db *mongo.Database) *MongoFavoriteRepository {
	coll := db.Collection("favorites")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.M{"session_id": 1}},
	})

	return &MongoFavoriteRepository{
		collection: coll,
	}
}

// Add stores a favorite. Favoriting an already-favorited session is a
// no-op thanks to the unique index.
func (r *MongoFavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	favorite.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, favorite)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		favorite.ID = oid.Hex()
	}
	return nil
}

func (r *MongoFavoriteRepository) Remove(ctx context.Context, userID, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "session_id": sessionID})
	return err
}

func (r *MongoFavoriteRepository) Exists(ctx context.Context, userID, sessionID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_id": userID, "session_id": sessionID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var favorites []*domain.Favorite
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *MongoFavoriteRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"session_id": sessionID})
}

func (r *MongoFavoriteRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"session_id": sessionID})
	return err
}
