package discount

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brewline/cafe-backend/internal/domain"
)

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		collection: db.Collection("discounts"),
	}
}

func (m *mongoRepository) GetByCode(ctx context.Context, code string) (*domain.DiscountDescriptor, error) {
	var descriptor domain.DiscountDescriptor

	filter := bson.M{"code": strings.ToUpper(strings.TrimSpace(code))}
	err := m.collection.FindOne(ctx, filter).Decode(&descriptor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUnknownCode
		}
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}

	return &descriptor, nil
}
