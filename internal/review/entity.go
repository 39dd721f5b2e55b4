// AngelaMos | 2026
// entity.go

package review

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is insert-only: never edited, never deleted. ProductID is a plain
// reference; the store enforces no foreign-key relationship.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"           json:"_id,omitempty"`
	ProductID     string             `bson:"productId"               json:"productId"`
	ReviewerName  string             `bson:"reviewerName,omitempty"  json:"reviewerName,omitempty"`
	ReviewerImage string             `bson:"reviewerImage,omitempty" json:"reviewerImage,omitempty"`
	Rating        int                `bson:"rating,omitempty"        json:"rating,omitempty"`
	Text          string             `bson:"text,omitempty"          json:"text,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty"     json:"createdAt,omitempty"`
}
