package repositories

import (
	"context"

	"toyshop/internal/config"
	"toyshop/internal/domain"
	"toyshop/internal/domain/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UserRepository wraps the user collection. Reviews reference users, so the
// review service verifies authors here before persisting.
type UserRepository struct {
	Coll *mongo.Collection
}

func (r UserRepository) coll() *mongo.Collection {
	if r.Coll != nil {
		return r.Coll
	}
	return config.Collection("user")
}

func (r UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (models.User, error) {
	var user models.User
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
