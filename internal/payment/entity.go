// AngelaMos | 2026
// entity.go

package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the storefront's record of a completed checkout. Price is
// in base currency units, matching what the client was quoted.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	Email         string             `bson:"email"          json:"email"`
	Price         float64            `bson:"price"          json:"price"`
	TransactionID string             `bson:"transactionId"  json:"transactionId"`
	Status        string             `bson:"status"         json:"status"`
	CreatedAt     time.Time          `bson:"createdAt"      json:"createdAt"`
}
