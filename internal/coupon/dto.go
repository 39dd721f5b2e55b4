// AngelaMos | 2026
// dto.go

package coupon

type CreateCouponRequest struct {
	CouponCode  string `json:"coupon_code" validate:"required,max=50"`
	Amount      int    `json:"amount"      validate:"min=0,max=100"`
	Description string `json:"description" validate:"max=500"`
	ExpiryDate  string `json:"expiryDate"  validate:"max=30"`
}

type UpdateCouponRequest struct {
	CouponCode  *string `json:"coupon_code,omitempty" validate:"omitempty,max=50"`
	Amount      *int    `json:"amount,omitempty"      validate:"omitempty,min=0,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	ExpiryDate  *string `json:"expiryDate,omitempty"  validate:"omitempty,max=30"`
}
