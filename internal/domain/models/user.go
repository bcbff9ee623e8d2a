package models

import "go.mongodb.org/mongo-driver/v2/bson"

type User struct {
	ID       bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Username string        `json:"username" bson:"username"`
	Fullname string        `json:"fullname" bson:"fullname"`
	Password string        `json:"-" bson:"password"` // never sent to clients
	IsAdmin  bool          `json:"isAdmin" bson:"isAdmin"`
}

// PublicUser is the credential-free shape safe for responses.
type PublicUser struct {
	ID       bson.ObjectID `json:"_id"`
	Username string        `json:"username"`
	Fullname string        `json:"fullname"`
	IsAdmin  bool          `json:"isAdmin"`
}

func (u User) ToPublic() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
		IsAdmin:  u.IsAdmin,
	}
}
