// AngelaMos | 2026
// dto.go

package user

type RegisterRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Name  string `json:"name"  validate:"max=100"`
	Photo string `json:"photo" validate:"omitempty,url"`
}

// RegisterResponse mirrors the store's insert result: a null insertedId
// with a message means the email was already registered.
type RegisterResponse struct {
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}

type UserListResponse struct {
	Users []User `json:"users"`
}
