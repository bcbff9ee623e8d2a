package repositories

import (
	"context"

	"toyshop/internal/config"
	"toyshop/internal/domain"
	"toyshop/internal/domain/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"
)

// ToyRepository wraps the toy collection.
type ToyRepository struct {
	Coll *mongo.Collection
}

func (r ToyRepository) coll() *mongo.Collection {
	if r.Coll != nil {
		return r.Coll
	}
	return config.Collection("toy")
}

// Query runs the filtered count and the page fetch concurrently and returns
// one page of toys plus the total match count.
func (r ToyRepository) Query(ctx context.Context, f domain.ToyFilter) ([]models.Toy, int64, error) {
	filter, sort, skip := BuildToyCriteria(f)
	coll := r.coll()

	var (
		total int64
		toys  []models.Toy
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := coll.CountDocuments(gctx, filter)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	g.Go(func() error {
		opts := options.Find().
			SetSort(sort).
			SetSkip(skip).
			SetLimit(int64(f.Limit()))
		cur, err := coll.Find(gctx, filter, opts)
		if err != nil {
			return err
		}
		return cur.All(gctx, &toys)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if toys == nil {
		toys = []models.Toy{}
	}
	return toys, total, nil
}

// GetByID fetches a single toy. An absent id yields a NotFoundError.
func (r ToyRepository) GetByID(ctx context.Context, id bson.ObjectID) (models.Toy, error) {
	var toy models.Toy
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&toy)
	if err == mongo.ErrNoDocuments {
		return models.Toy{}, domain.NotFoundError{Resource: "toy"}
	}
	if err != nil {
		return models.Toy{}, err
	}
	return toy, nil
}

// Insert persists a toy and returns the generated identity.
func (r ToyRepository) Insert(ctx context.Context, toy models.Toy) (bson.ObjectID, error) {
	res, err := r.coll().InsertOne(ctx, toy)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// UpdateFields writes the mutable fields only; identity, createdAt, inStock
// and msgs are untouched. Returns the matched document count.
func (r ToyRepository) UpdateFields(ctx context.Context, id bson.ObjectID, name string, price float64, labels []string) (int64, error) {
	res, err := r.coll().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "price": price, "labels": labels}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes a toy by id. Deleting an absent id is a no-op.
func (r ToyRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// PushMsg appends a message to the toy's msgs sequence. Returns the matched
// document count so callers can detect a missing toy.
func (r ToyRepository) PushMsg(ctx context.Context, id bson.ObjectID, msg models.ToyMsg) (int64, error) {
	res, err := r.coll().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"msgs": msg}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// PullMsg removes the message with the given id. Pulling an absent message id
// leaves the sequence unchanged.
func (r ToyRepository) PullMsg(ctx context.Context, id bson.ObjectID, msgID string) error {
	_, err := r.coll().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"msgs": bson.M{"id": msgID}}},
	)
	return err
}

// All returns every toy, newest first. Used by the catalog report.
func (r ToyRepository) All(ctx context.Context) ([]models.Toy, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var toys []models.Toy
	if err := cur.All(ctx, &toys); err != nil {
		return nil, err
	}
	if toys == nil {
		toys = []models.Toy{}
	}
	return toys, nil
}
