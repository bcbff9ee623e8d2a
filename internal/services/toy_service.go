package services

import (
	"context"
	"fmt"
	"time"

	"toyshop/internal/domain"
	"toyshop/internal/domain/models"
	"toyshop/internal/utils"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const msgIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ToyStore is the storage port the toy service depends on.
type ToyStore interface {
	Query(ctx context.Context, f domain.ToyFilter) ([]models.Toy, int64, error)
	GetByID(ctx context.Context, id bson.ObjectID) (models.Toy, error)
	Insert(ctx context.Context, toy models.Toy) (bson.ObjectID, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, name string, price float64, labels []string) (int64, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	PushMsg(ctx context.Context, id bson.ObjectID, msg models.ToyMsg) (int64, error)
	PullMsg(ctx context.Context, id bson.ObjectID, msgID string) error
	All(ctx context.Context) ([]models.Toy, error)
}

// ToyService validates input, applies creation/update invariants and shapes
// query results. Now is injectable for tests; it defaults to wall-clock unix
// milliseconds to match the stored createdAt format.
type ToyService struct {
	Toys      ToyStore
	PageSize  int
	RequestID string
	Now       func() int64
	NewMsgID  func() (string, error)
}

// ToyPage is one page of query results.
type ToyPage struct {
	Toys    []models.Toy `json:"toys"`
	MaxPage int64        `json:"maxPage"`
}

func (s ToyService) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return domain.DefaultPageSize
}

// Query returns one filtered, sorted page of toys plus the page count over
// the full match set.
func (s ToyService) Query(ctx context.Context, f domain.ToyFilter) (ToyPage, error) {
	if f.PageSize <= 0 {
		f.PageSize = s.pageSize()
	}

	toys, total, err := s.Toys.Query(ctx, f)
	if err != nil {
		utils.LogEvent(s.RequestID, "toy", "query", "cannot find toys: "+err.Error())
		return ToyPage{}, domain.OperationError{Op: "query toys", Err: err}
	}

	limit := int64(f.Limit())
	maxPage := (total + limit - 1) / limit
	return ToyPage{Toys: toys, MaxPage: maxPage}, nil
}

func (s ToyService) GetByID(ctx context.Context, toyID string) (models.Toy, error) {
	id, err := parseObjectID(toyID, "toyId")
	if err != nil {
		return models.Toy{}, err
	}
	toy, err := s.Toys.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Toy{}, err
		}
		utils.LogEvent(s.RequestID, "toy", "get", fmt.Sprintf("while finding toy %s: %v", toyID, err))
		return models.Toy{}, domain.OperationError{Op: "get toy", Err: err}
	}
	return toy, nil
}

// Add stamps the creation time and forces inStock to true regardless of
// caller input, then persists.
func (s ToyService) Add(ctx context.Context, toy models.Toy) (models.Toy, error) {
	if toy.Name == "" {
		return models.Toy{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if toy.Price == 0 {
		return models.Toy{}, domain.ValidationError{Field: "price", Msg: "required"}
	}

	toy.ID = bson.ObjectID{}
	toy.CreatedAt = s.now()
	toy.InStock = true
	if toy.Labels == nil {
		toy.Labels = []string{}
	}
	if toy.Msgs == nil {
		toy.Msgs = []models.ToyMsg{}
	}

	id, err := s.Toys.Insert(ctx, toy)
	if err != nil {
		utils.LogEvent(s.RequestID, "toy", "add", "cannot insert toy: "+err.Error())
		return models.Toy{}, domain.OperationError{Op: "add toy", Err: err}
	}
	toy.ID = id
	return toy, nil
}

// Update writes name, price and labels only; identity, createdAt, inStock
// and msgs stay untouched even when present in the input. An unmatched id is
// surfaced as not-found rather than echoed back as success.
func (s ToyService) Update(ctx context.Context, toy models.Toy) (models.Toy, error) {
	if toy.ID.IsZero() {
		return models.Toy{}, domain.ValidationError{Field: "_id", Msg: "required"}
	}
	if toy.Name == "" {
		return models.Toy{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if toy.Price == 0 {
		return models.Toy{}, domain.ValidationError{Field: "price", Msg: "required"}
	}
	if toy.Labels == nil {
		toy.Labels = []string{}
	}

	matched, err := s.Toys.UpdateFields(ctx, toy.ID, toy.Name, toy.Price, toy.Labels)
	if err != nil {
		utils.LogEvent(s.RequestID, "toy", "update", fmt.Sprintf("cannot update toy %s: %v", toy.ID.Hex(), err))
		return models.Toy{}, domain.OperationError{Op: "update toy", Err: err}
	}
	if matched == 0 {
		return models.Toy{}, domain.NotFoundError{Resource: "toy"}
	}
	return toy, nil
}

// Remove deletes by identity; removing an absent id is a no-op.
func (s ToyService) Remove(ctx context.Context, toyID string) error {
	id, err := parseObjectID(toyID, "toyId")
	if err != nil {
		return err
	}
	if err := s.Toys.Delete(ctx, id); err != nil {
		utils.LogEvent(s.RequestID, "toy", "remove", fmt.Sprintf("cannot remove toy %s: %v", toyID, err))
		return domain.OperationError{Op: "remove toy", Err: err}
	}
	return nil
}

// AddMsg appends an author-attributed message with a fresh short id. A
// missing toy surfaces as not-found.
func (s ToyService) AddMsg(ctx context.Context, toyID, txt, authorID, authorName string) (models.ToyMsg, error) {
	id, err := parseObjectID(toyID, "toyId")
	if err != nil {
		return models.ToyMsg{}, err
	}
	byID, err := parseObjectID(authorID, "userId")
	if err != nil {
		return models.ToyMsg{}, err
	}

	msgID, err := s.newMsgID()
	if err != nil {
		return models.ToyMsg{}, domain.OperationError{Op: "generate message id", Err: err}
	}
	msg := models.ToyMsg{
		ID:  msgID,
		Txt: txt,
		By:  models.MsgAuthor{ID: byID, Fullname: authorName},
	}

	matched, err := s.Toys.PushMsg(ctx, id, msg)
	if err != nil {
		utils.LogEvent(s.RequestID, "toy", "add_msg", fmt.Sprintf("cannot add message to toy %s: %v", toyID, err))
		return models.ToyMsg{}, domain.OperationError{Op: "add toy message", Err: err}
	}
	if matched == 0 {
		return models.ToyMsg{}, domain.NotFoundError{Resource: "toy"}
	}
	return msg, nil
}

// RemoveMsg pulls a message by id; pulling an absent id is a no-op.
func (s ToyService) RemoveMsg(ctx context.Context, toyID, msgID string) error {
	id, err := parseObjectID(toyID, "toyId")
	if err != nil {
		return err
	}
	if err := s.Toys.PullMsg(ctx, id, msgID); err != nil {
		utils.LogEvent(s.RequestID, "toy", "remove_msg", fmt.Sprintf("cannot remove message from toy %s: %v", toyID, err))
		return domain.OperationError{Op: "remove toy message", Err: err}
	}
	return nil
}

func (s ToyService) now() int64 {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UnixMilli()
}

func (s ToyService) newMsgID() (string, error) {
	if s.NewMsgID != nil {
		return s.NewMsgID()
	}
	return gonanoid.Generate(msgIDAlphabet, 6)
}

func parseObjectID(hex, field string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.ObjectID{}, domain.ValidationError{Field: field, Msg: "invalid id", Err: err}
	}
	return id, nil
}
