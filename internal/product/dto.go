// AngelaMos | 2026
// dto.go

package product

type CreateProductRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Image       string `json:"image"       validate:"omitempty,url"`
	Description string `json:"description" validate:"max=5000"`
	Tags        string `json:"tags"        validate:"max=500"`
	Owner       Owner  `json:"owner"`
}

// UpdateProductRequest is a merge patch; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=200"`
	Image       *string `json:"image,omitempty"       validate:"omitempty,url"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Tags        *string `json:"tags,omitempty"        validate:"omitempty,max=500"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

type FeatureRequest struct {
	IsFeatured *bool `json:"isFeatured" validate:"required"`
}

type ReportRequest struct {
	Reported *bool `json:"reported" validate:"required"`
}

type ListParams struct {
	Page   int
	Size   int
	Search string
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = 20
	}
	if p.Size > 100 {
		p.Size = 100
	}
}

// Offset implements 1-indexed pagination: page 1 skips nothing.
func (p *ListParams) Offset() int64 {
	return int64((p.Page - 1) * p.Size)
}
