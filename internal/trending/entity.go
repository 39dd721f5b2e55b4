// AngelaMos | 2026
// entity.go

package trending

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is a lightweight vote-ranked record kept separately from the
// catalog. There is no referential integrity with products; the duplication
// is a known property of the data model, not a foreign-key relationship.
type Entry struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"   json:"_id,omitempty"`
	Name  string             `bson:"name"            json:"name"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
	Tags  string             `bson:"tags,omitempty"  json:"tags,omitempty"`
	Votes int64              `bson:"votes"           json:"votes"`
}
