package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Review is the persisted shape: foreign keys only, no embedded snapshots.
// Exactly these fields are written on insert regardless of caller input.
type Review struct {
	ID         bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ByUserID   bson.ObjectID `json:"byUserId" bson:"byUserId"`
	AboutToyID bson.ObjectID `json:"aboutToyId" bson:"aboutToyId"`
	Txt        string        `json:"txt" bson:"txt"`
}

// ReviewAuthor is the joined author snapshot: identity renamed to userId,
// credentials stripped.
type ReviewAuthor struct {
	UserID   bson.ObjectID `json:"userId" bson:"userId"`
	Fullname string        `json:"fullname" bson:"fullname"`
	IsAdmin  bool          `json:"isAdmin" bson:"isAdmin"`
}

// ReviewToy is the joined subject snapshot: identity renamed to toyId,
// labels/createdAt/msgs stripped.
type ReviewToy struct {
	ToyID   bson.ObjectID `json:"toyId" bson:"toyId"`
	Name    string        `json:"name" bson:"name"`
	Price   float64       `json:"price" bson:"price"`
	InStock bool          `json:"inStock" bson:"inStock"`
}

// ReviewDoc is the read-time shape produced by the review aggregation:
// author and subject resolved, raw foreign keys omitted.
type ReviewDoc struct {
	ID       bson.ObjectID `json:"_id" bson:"_id"`
	Txt      string        `json:"txt" bson:"txt"`
	ByUser   ReviewAuthor  `json:"byUser" bson:"byUser"`
	AboutToy ReviewToy     `json:"aboutToy" bson:"aboutToy"`
}
