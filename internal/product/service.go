// AngelaMos | 2026
// service.go

package product

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
	"github.com/carterperez-dev/techbuzz-api/internal/store"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create performs a direct insert: no dedup, no ownership check against the
// caller. Submissions start pending until a moderator accepts them.
func (s *Service) Create(
	ctx context.Context,
	req CreateProductRequest,
) (string, error) {
	p := &Product{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Tags:        req.Tags,
		Owner:       req.Owner,
		Status:      StatusPending,
		Votes:       0,
		Timestamp:   time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}

	return id, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListPublic(
	ctx context.Context,
	params ListParams,
) ([]Product, int64, error) {
	return s.repo.ListPublic(ctx, params)
}

func (s *Service) ListByOwner(
	ctx context.Context,
	email string,
) ([]Product, error) {
	return s.repo.ListByOwner(ctx, email)
}

func (s *Service) ListFeatured(
	ctx context.Context,
	ascending bool,
) ([]Product, error) {
	return s.repo.ListFeatured(ctx, ascending)
}

func (s *Service) ListReported(ctx context.Context) ([]Product, error) {
	return s.repo.ListReported(ctx)
}

// Update is a merge patch over the existing document. Editing a missing id
// reports not-found rather than fabricating a record from the patch.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateProductRequest,
) (*store.UpdateResult, error) {
	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("update product: empty patch: %w", core.ErrInvalidInput)
	}

	return s.applyPatch(ctx, id, fields)
}

func (s *Service) SetStatus(
	ctx context.Context,
	id, status string,
) (*store.UpdateResult, error) {
	return s.applyPatch(ctx, id, map[string]any{"status": status})
}

func (s *Service) SetFeatured(
	ctx context.Context,
	id string,
	featured bool,
) (*store.UpdateResult, error) {
	return s.applyPatch(ctx, id, map[string]any{"isFeatured": featured})
}

func (s *Service) SetReported(
	ctx context.Context,
	id string,
	reported bool,
) (*store.UpdateResult, error) {
	return s.applyPatch(ctx, id, map[string]any{"reported": reported})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("delete product: %w", core.ErrNotFound)
	}

	return nil
}

// Vote is the store's atomic increment; concurrent votes never lose counts.
func (s *Service) Vote(ctx context.Context, id string) (*Product, error) {
	return s.repo.Vote(ctx, id)
}

func (s *Service) EstimatedCount(ctx context.Context) (int64, error) {
	return s.repo.EstimatedCount(ctx)
}

func (s *Service) applyPatch(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*store.UpdateResult, error) {
	result, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("patch product: %w", core.ErrNotFound)
	}

	return result, nil
}
