// AngelaMos | 2026
// entity.go

package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product's status, isFeatured and reported fields are independently
// settable flags, not one exclusive state machine: a reported product can
// stay accepted and featured until a moderator says otherwise.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"         json:"_id,omitempty"`
	Name        string             `bson:"name"                  json:"name"`
	Image       string             `bson:"image,omitempty"       json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Tags        string             `bson:"tags,omitempty"        json:"tags,omitempty"`
	Owner       Owner              `bson:"owner"                 json:"owner"`
	Status      string             `bson:"status,omitempty"      json:"status,omitempty"`
	IsFeatured  bool               `bson:"isFeatured"            json:"isFeatured"`
	Reported    bool               `bson:"reported"              json:"reported"`
	Votes       int64              `bson:"votes"                 json:"votes"`
	Timestamp   time.Time          `bson:"timestamp,omitempty"   json:"timestamp,omitempty"`
}

type Owner struct {
	Name  string `bson:"name,omitempty"  json:"name,omitempty"`
	Email string `bson:"email"           json:"email"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)
