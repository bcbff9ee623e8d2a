package repositories

import (
	"context"

	"toyshop/internal/config"
	"toyshop/internal/domain/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ReviewRepository wraps the review collection.
type ReviewRepository struct {
	Coll *mongo.Collection
}

func (r ReviewRepository) coll() *mongo.Collection {
	if r.Coll != nil {
		return r.Coll
	}
	return config.Collection("review")
}

// BuildReviewPipeline assembles the author-scoped join pipeline. Both lookups
// unwind without preserving empty arrays, so a review whose user or toy has
// been deleted drops out of the result (inner-join semantics).
func BuildReviewPipeline(authorID bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"byUserId": authorID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "user",
			"localField":   "byUserId",
			"foreignField": "_id",
			"as":           "byUser",
		}}},
		{{Key: "$unwind", Value: "$byUser"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "toy",
			"localField":   "aboutToyId",
			"foreignField": "_id",
			"as":           "aboutToy",
		}}},
		{{Key: "$unwind", Value: "$aboutToy"}},
		{{Key: "$project", Value: bson.M{
			"txt": 1,
			"byUser": bson.M{
				"userId":   "$byUser._id",
				"fullname": "$byUser.fullname",
				"isAdmin":  "$byUser.isAdmin",
			},
			"aboutToy": bson.M{
				"toyId":   "$aboutToy._id",
				"name":    "$aboutToy.name",
				"price":   "$aboutToy.price",
				"inStock": "$aboutToy.inStock",
			},
		}}},
	}
}

// QueryByAuthor resolves the author's reviews with user and toy snapshots.
func (r ReviewRepository) QueryByAuthor(ctx context.Context, authorID bson.ObjectID) ([]models.ReviewDoc, error) {
	cur, err := r.coll().Aggregate(ctx, BuildReviewPipeline(authorID))
	if err != nil {
		return nil, err
	}
	var docs []models.ReviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []models.ReviewDoc{}
	}
	return docs, nil
}

// Insert persists the foreign-key shape only.
func (r ReviewRepository) Insert(ctx context.Context, review models.Review) (bson.ObjectID, error) {
	res, err := r.coll().InsertOne(ctx, review)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// Delete removes a review by id. A non-nil authorID adds an ownership match,
// so non-admins can only delete their own reviews. Returns the deleted count.
func (r ReviewRepository) Delete(ctx context.Context, id bson.ObjectID, authorID *bson.ObjectID) (int64, error) {
	filter := bson.M{"_id": id}
	if authorID != nil {
		filter["byUserId"] = *authorID
	}
	res, err := r.coll().DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
