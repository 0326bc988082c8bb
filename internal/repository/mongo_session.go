package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowfit/flowfit/internal/domain"
)

type MongoSessionRepository struct {
	collection *mongo.Collection
}

func NewMongoSessionRepository(db *mongo.Database) *MongoSessionRepository {
	coll := db.Collection("sessions")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"created_by": 1}},
		{Keys: bson.M{"is_shared": 1}},
	})

	return &MongoSessionRepository{
		collection: coll,
	}
}

func (r *MongoSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid.Hex()
	}
	return nil
}

func (r *MongoSessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var session domain.Session
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *MongoSessionRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Session, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"created_by": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*domain.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *MongoSessionRepository) ListShared(ctx context.Context) ([]*domain.Session, error) {
	opts := options.Find().SetSort(bson.M{"rating": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"is_shared": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*domain.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *MongoSessionRepository) Update(ctx context.Context, session *domain.Session) error {
	oid, err := primitive.ObjectIDFromHex(session.ID)
	if err != nil {
		return domain.ErrInvalidID
	}
	session.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":        session.Name,
			"description": session.Description,
			"category":    session.Category,
			"difficulty":  session.Difficulty,
			"rest_time":   session.RestTime,
			"duration":    session.Duration,
			"exercises":   session.Exercises,
			"image_url":   session.ImageURL,
			"updated_at":  session.UpdatedAt,
		},
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *MongoSessionRepository) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"rating":       rating,
			"rating_count": count,
			"updated_at":   time.Now(),
		},
	})
	return err
}

func (r *MongoSessionRepository) SetShared(ctx context.Context, id string, shared bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"is_shared":  shared,
			"updated_at": time.Now(),
		},
	})
	return err
}

func (r *MongoSessionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
