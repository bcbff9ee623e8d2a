package services

import (
	"context"
	"fmt"

	"toyshop/internal/domain"
	"toyshop/internal/domain/models"
	"toyshop/internal/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReviewStore is the storage port for reviews.
type ReviewStore interface {
	QueryByAuthor(ctx context.Context, authorID bson.ObjectID) ([]models.ReviewDoc, error)
	Insert(ctx context.Context, review models.Review) (bson.ObjectID, error)
	Delete(ctx context.Context, id bson.ObjectID, authorID *bson.ObjectID) (int64, error)
}

// ReviewUserStore resolves review authors.
type ReviewUserStore interface {
	GetByID(ctx context.Context, id bson.ObjectID) (models.User, error)
}

// ReviewToyStore resolves review subjects.
type ReviewToyStore interface {
	GetByID(ctx context.Context, id bson.ObjectID) (models.Toy, error)
}

// ReviewService validates review mutations and runs the author-scoped join
// query. The requesting principal arrives as explicit arguments; nothing is
// read from ambient request state below the handler layer.
type ReviewService struct {
	Reviews   ReviewStore
	Users     ReviewUserStore
	Toys      ReviewToyStore
	RequestID string
}

// Query lists the principal's own reviews with author and toy snapshots
// resolved. There is no path to list another user's reviews here.
func (s ReviewService) Query(ctx context.Context, principalID string) ([]models.ReviewDoc, error) {
	authorID, err := parseObjectID(principalID, "userId")
	if err != nil {
		return nil, err
	}
	docs, err := s.Reviews.QueryByAuthor(ctx, authorID)
	if err != nil {
		utils.LogEvent(s.RequestID, "review", "query", "cannot get reviews: "+err.Error())
		return nil, domain.OperationError{Op: "query reviews", Err: err}
	}
	return docs, nil
}

// Add verifies that the subject toy and the authoring user both exist, then
// persists exactly {byUserId, aboutToyId, txt}. Extra caller fields never
// reach storage. Returns the persisted review and the resolved toy so the
// handler can shape the joined response without a second fetch.
func (s ReviewService) Add(ctx context.Context, principalID, aboutToyID, txt string) (models.Review, models.Toy, error) {
	authorID, err := parseObjectID(principalID, "userId")
	if err != nil {
		return models.Review{}, models.Toy{}, err
	}
	toyID, err := parseObjectID(aboutToyID, "aboutToyId")
	if err != nil {
		return models.Review{}, models.Toy{}, err
	}

	toy, err := s.Toys.GetByID(ctx, toyID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Review{}, models.Toy{}, err
		}
		utils.LogEvent(s.RequestID, "review", "add", fmt.Sprintf("cannot resolve toy %s: %v", aboutToyID, err))
		return models.Review{}, models.Toy{}, domain.OperationError{Op: "add review", Err: err}
	}
	if _, err := s.Users.GetByID(ctx, authorID); err != nil {
		if domain.IsNotFound(err) {
			return models.Review{}, models.Toy{}, err
		}
		utils.LogEvent(s.RequestID, "review", "add", fmt.Sprintf("cannot resolve user %s: %v", principalID, err))
		return models.Review{}, models.Toy{}, domain.OperationError{Op: "add review", Err: err}
	}

	review := models.Review{
		ByUserID:   authorID,
		AboutToyID: toyID,
		Txt:        txt,
	}
	id, err := s.Reviews.Insert(ctx, review)
	if err != nil {
		utils.LogEvent(s.RequestID, "review", "add", "cannot insert review: "+err.Error())
		return models.Review{}, models.Toy{}, domain.OperationError{Op: "add review", Err: err}
	}
	review.ID = id
	return review, toy, nil
}

// Remove deletes by identity; unless the requester is an admin the predicate
// also matches ownership. A count of 0 means nothing happened, which the
// caller reports without treating it as an error.
func (s ReviewService) Remove(ctx context.Context, reviewID, requesterID string, isAdmin bool) (int64, error) {
	id, err := parseObjectID(reviewID, "reviewId")
	if err != nil {
		return 0, err
	}

	var ownerID *bson.ObjectID
	if !isAdmin {
		oid, err := parseObjectID(requesterID, "userId")
		if err != nil {
			return 0, err
		}
		ownerID = &oid
	}

	removed, err := s.Reviews.Delete(ctx, id, ownerID)
	if err != nil {
		utils.LogEvent(s.RequestID, "review", "remove", fmt.Sprintf("cannot remove review %s: %v", reviewID, err))
		return 0, domain.OperationError{Op: "remove review", Err: err}
	}
	return removed, nil
}
