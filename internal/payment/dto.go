// AngelaMos | 2026
// dto.go

package payment

type QuoteRequest struct {
	Price      float64 `json:"price"       validate:"required,gt=0"`
	CouponCode string  `json:"coupon_code" validate:"max=50"`
}

type QuoteResponse struct {
	ClientSecret     string  `json:"clientSecret"`
	DiscountPercent  int     `json:"discountPercent"`
	DiscountedAmount float64 `json:"discountedAmount"`
}

type RecordPaymentRequest struct {
	Email         string  `json:"email"         validate:"required,email"`
	Price         float64 `json:"price"         validate:"required,gt=0"`
	TransactionID string  `json:"transactionId" validate:"required,max=200"`
	Status        string  `json:"status"        validate:"max=50"`
}
