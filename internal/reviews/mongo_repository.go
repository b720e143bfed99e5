package reviews

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brewline/cafe-backend/internal/domain"
)

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		collection: db.Collection("reviews"),
	}
}

func (m *mongoRepository) Insert(ctx context.Context, review *domain.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}

	_, err := m.collection.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (m *mongoRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := m.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var result []domain.Review
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return result, nil
}

func (m *mongoRepository) ListRecent(ctx context.Context, limit int) ([]domain.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var result []domain.Review
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return result, nil
}
