package models

import "go.mongodb.org/mongo-driver/v2/bson"

// MsgAuthor is the denormalized author snapshot embedded in a toy message.
type MsgAuthor struct {
	ID       bson.ObjectID `json:"_id" bson:"_id"`
	Fullname string        `json:"fullname" bson:"fullname"`
}

// ToyMsg is a short note nested inside a toy. Its id is a short random
// string generated at creation, unique within the parent's msgs sequence.
type ToyMsg struct {
	ID  string    `json:"id" bson:"id"`
	Txt string    `json:"txt" bson:"txt"`
	By  MsgAuthor `json:"by" bson:"by"`
}

// Toy is a product document. CreatedAt is unix milliseconds, set once at
// insertion and immutable afterwards.
type Toy struct {
	ID        bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Price     float64       `json:"price" bson:"price"`
	Labels    []string      `json:"labels" bson:"labels"`
	InStock   bool          `json:"inStock" bson:"inStock"`
	CreatedAt int64         `json:"createdAt" bson:"createdAt"`
	Msgs      []ToyMsg      `json:"msgs" bson:"msgs"`
}
