// AngelaMos | 2026
// entity.go

package coupon

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coupon grants a percentage discount at checkout. Amount is the
// discount in whole percent (0-100). ExpiryDate is informational and
// displayed to shoppers; expired codes are still resolvable so the
// storefront can explain why a code no longer applies.
type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CouponCode  string             `bson:"coupon_code"   json:"coupon_code"`
	Amount      int                `bson:"amount"        json:"amount"`
	Description string             `bson:"description"   json:"description"`
	ExpiryDate  string             `bson:"expiryDate"    json:"expiryDate"`
}
