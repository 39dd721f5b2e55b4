// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
	"github.com/carterperez-dev/techbuzz-api/internal/middleware"
	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register inserts the user if the email is unseen and otherwise leaves the
// existing record untouched. Safe to call on every sign-in.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*RegisterResponse, error) {
	email := strings.ToLower(req.Email)

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return &RegisterResponse{
			InsertedID: nil,
			Message:    "user already exists",
		}, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	insertedID, err := s.repo.Insert(ctx, &User{
		Email:     email,
		Name:      req.Name,
		Photo:     req.Photo,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// Two concurrent first sign-ins can race past the existence
		// check; the unique email index makes the loser idempotent.
		if errors.Is(err, core.ErrDuplicateKey) {
			return &RegisterResponse{
				InsertedID: nil,
				Message:    "user already exists",
			}, nil
		}
		return nil, fmt.Errorf("register user: %w", err)
	}

	return &RegisterResponse{InsertedID: &insertedID}, nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(email))
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Promote sets the stored role. The gate reads roles fresh per request, so
// the change binds on the target's next call.
func (s *Service) Promote(
	ctx context.Context,
	id, role string,
) (*store.UpdateResult, error) {
	if role != RoleModerator && role != RoleAdmin {
		return nil, fmt.Errorf(
			"promote: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	result, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("promote: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("promote: %w", core.ErrNotFound)
	}

	return result, nil
}

// RoleByEmail backs the access-control gates. Always a live store read.
func (s *Service) RoleByEmail(
	ctx context.Context,
	email string,
) (string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

var _ middleware.RoleLookup = (*Service)(nil)
