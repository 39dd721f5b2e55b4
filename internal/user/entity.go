// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created on first sign-in and never deleted. Role is mutated only
// through the admin-gated promotion endpoints.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"       json:"_id,omitempty"`
	Email     string             `bson:"email"               json:"email"`
	Name      string             `bson:"name,omitempty"      json:"name,omitempty"`
	Photo     string             `bson:"photo,omitempty"     json:"photo,omitempty"`
	Role      string             `bson:"role,omitempty"      json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

const (
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}
