package services

import (
	"context"
	"testing"

	"toyshop/internal/domain"
	"toyshop/internal/domain/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type fakeReviewStore struct {
	queriedAuthor bson.ObjectID
	docs          []models.ReviewDoc

	inserted *models.Review
	insertID bson.ObjectID

	deletedID     bson.ObjectID
	deletedAuthor *bson.ObjectID
	deletedCount  int64
}

func (f *fakeReviewStore) QueryByAuthor(_ context.Context, authorID bson.ObjectID) ([]models.ReviewDoc, error) {
	f.queriedAuthor = authorID
	return f.docs, nil
}

func (f *fakeReviewStore) Insert(_ context.Context, review models.Review) (bson.ObjectID, error) {
	f.inserted = &review
	return f.insertID, nil
}

func (f *fakeReviewStore) Delete(_ context.Context, id bson.ObjectID, authorID *bson.ObjectID) (int64, error) {
	f.deletedID = id
	f.deletedAuthor = authorID
	return f.deletedCount, nil
}

type fakeUserStore struct {
	user models.User
	err  error
}

func (f fakeUserStore) GetByID(_ context.Context, _ bson.ObjectID) (models.User, error) {
	return f.user, f.err
}

type fakeToyGetter struct {
	toy models.Toy
	err error
}

func (f fakeToyGetter) GetByID(_ context.Context, _ bson.ObjectID) (models.Toy, error) {
	return f.toy, f.err
}

func TestReviewServiceQueryScopedToPrincipal(t *testing.T) {
	store := &fakeReviewStore{docs: []models.ReviewDoc{}}
	svc := ReviewService{Reviews: store, Users: fakeUserStore{}, Toys: fakeToyGetter{}}
	principalID := bson.NewObjectID()

	if _, err := svc.Query(context.Background(), principalID.Hex()); err != nil {
		t.Fatalf("query error: %v", err)
	}
	if store.queriedAuthor != principalID {
		t.Fatalf("query must be scoped to the principal, got %s", store.queriedAuthor.Hex())
	}

	if _, err := svc.Query(context.Background(), "not-hex"); !domain.IsValidation(err) {
		t.Fatalf("bad principal id should be a validation error, got %v", err)
	}
}

func TestReviewServiceAddPersistsForeignKeyShapeOnly(t *testing.T) {
	toyID := bson.NewObjectID()
	userID := bson.NewObjectID()
	store := &fakeReviewStore{insertID: bson.NewObjectID()}
	svc := ReviewService{
		Reviews: store,
		Users:   fakeUserStore{user: models.User{ID: userID, Fullname: "Puki"}},
		Toys:    fakeToyGetter{toy: models.Toy{ID: toyID, Name: "Kite", Price: 10, InStock: true}},
	}

	review, toy, err := svc.Add(context.Background(), userID.Hex(), toyID.Hex(), "love it")
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if store.inserted.ByUserID != userID || store.inserted.AboutToyID != toyID || store.inserted.Txt != "love it" {
		t.Fatalf("persisted shape wrong: %+v", store.inserted)
	}
	if !store.inserted.ID.IsZero() {
		t.Fatalf("identity is storage-assigned and must not be preset")
	}
	if review.ID != store.insertID {
		t.Fatalf("generated identity not returned")
	}
	if toy.Name != "Kite" {
		t.Fatalf("resolved toy not returned, got %+v", toy)
	}
}

func TestReviewServiceAddRequiresExistingToy(t *testing.T) {
	svc := ReviewService{
		Reviews: &fakeReviewStore{},
		Users:   fakeUserStore{},
		Toys:    fakeToyGetter{err: domain.NotFoundError{Resource: "toy"}},
	}

	_, _, err := svc.Add(context.Background(), bson.NewObjectID().Hex(), bson.NewObjectID().Hex(), "x")
	if !domain.IsNotFound(err) {
		t.Fatalf("review about a missing toy should be not-found, got %v", err)
	}
}

func TestReviewServiceRemoveOwnership(t *testing.T) {
	store := &fakeReviewStore{deletedCount: 1}
	svc := ReviewService{Reviews: store, Users: fakeUserStore{}, Toys: fakeToyGetter{}}
	reviewID := bson.NewObjectID()
	requesterID := bson.NewObjectID()

	// non-admin removal carries the ownership match
	removed, err := svc.Remove(context.Background(), reviewID.Hex(), requesterID.Hex(), false)
	if err != nil {
		t.Fatalf("remove error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if store.deletedAuthor == nil || *store.deletedAuthor != requesterID {
		t.Fatalf("non-admin delete must include the ownership predicate")
	}

	// admin removal matches identity only
	if _, err := svc.Remove(context.Background(), reviewID.Hex(), requesterID.Hex(), true); err != nil {
		t.Fatalf("admin remove error: %v", err)
	}
	if store.deletedAuthor != nil {
		t.Fatalf("admin delete must not be ownership-restricted")
	}
}

func TestReviewServiceRemoveZeroIsNotError(t *testing.T) {
	store := &fakeReviewStore{deletedCount: 0}
	svc := ReviewService{Reviews: store, Users: fakeUserStore{}, Toys: fakeToyGetter{}}

	removed, err := svc.Remove(context.Background(), bson.NewObjectID().Hex(), bson.NewObjectID().Hex(), false)
	if err != nil {
		t.Fatalf("zero removals must not error, got %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected 0 removed, got %d", removed)
	}
}
