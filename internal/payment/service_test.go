// AngelaMos | 2026
// service_test.go

package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

type fakeRepository struct {
	inserted []*Payment
	byEmail  map[string][]Payment
}

func (f *fakeRepository) Insert(_ context.Context, p *Payment) (string, error) {
	f.inserted = append(f.inserted, p)
	return "665f1f77bcf86cd799439011", nil
}

func (f *fakeRepository) ListByEmail(
	_ context.Context,
	email string,
) ([]Payment, error) {
	return f.byEmail[email], nil
}

func (f *fakeRepository) LatestByEmail(
	_ context.Context,
	email string,
) (*Payment, error) {
	payments := f.byEmail[email]
	if len(payments) == 0 {
		return nil, core.ErrNotFound
	}
	return &payments[0], nil
}

type fakeResolver struct {
	percents map[string]int
}

func (f *fakeResolver) DiscountPercent(
	_ context.Context,
	code string,
) (int, error) {
	return f.percents[code], nil
}

type fakeProvider struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (f *fakeProvider) CreateIntent(
	_ context.Context,
	amount int64,
	currency string,
) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastAmount = amount
	f.lastCurrency = currency
	return "pi_secret_123", nil
}

func TestServiceQuote(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		code         string
		wantCharge   int64
		wantPercent  int
		wantResponse float64
	}{
		{
			name:         "no coupon",
			price:        10.00,
			code:         "",
			wantCharge:   1000,
			wantPercent:  0,
			wantResponse: 10.00,
		},
		{
			name:         "ten percent off",
			price:        10.00,
			code:         "SAVE10",
			wantCharge:   900,
			wantPercent:  10,
			wantResponse: 9.00,
		},
		{
			name:         "unknown code charges full price",
			price:        10.00,
			code:         "BADCODE",
			wantCharge:   1000,
			wantPercent:  0,
			wantResponse: 10.00,
		},
		{
			name:         "discount floors in minor units",
			price:        19.99,
			code:         "SAVE15",
			wantCharge:   1700,
			wantPercent:  15,
			wantResponse: 17.00,
		},
		{
			name:         "full discount",
			price:        5.00,
			code:         "FREE",
			wantCharge:   0,
			wantPercent:  100,
			wantResponse: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			svc := NewService(
				&fakeRepository{},
				&fakeResolver{percents: map[string]int{
					"SAVE10": 10,
					"SAVE15": 15,
					"FREE":   100,
				}},
				provider,
				"usd",
			)

			quote, err := svc.Quote(context.Background(), &QuoteRequest{
				Price:      tt.price,
				CouponCode: tt.code,
			})
			if err != nil {
				t.Fatalf("Quote() error = %v", err)
			}

			if provider.lastAmount != tt.wantCharge {
				t.Errorf(
					"charged amount = %d, want %d",
					provider.lastAmount,
					tt.wantCharge,
				)
			}
			if provider.lastCurrency != "usd" {
				t.Errorf("currency = %q, want usd", provider.lastCurrency)
			}
			if quote.DiscountPercent != tt.wantPercent {
				t.Errorf(
					"DiscountPercent = %d, want %d",
					quote.DiscountPercent,
					tt.wantPercent,
				)
			}
			if quote.DiscountedAmount != tt.wantResponse {
				t.Errorf(
					"DiscountedAmount = %v, want %v",
					quote.DiscountedAmount,
					tt.wantResponse,
				)
			}
			if quote.ClientSecret != "pi_secret_123" {
				t.Errorf("ClientSecret = %q", quote.ClientSecret)
			}
		})
	}
}

func TestServiceQuoteProviderFailure(t *testing.T) {
	svc := NewService(
		&fakeRepository{},
		&fakeResolver{},
		&fakeProvider{err: errors.New("stripe down")},
		"usd",
	)

	_, err := svc.Quote(context.Background(), &QuoteRequest{Price: 10})
	if !errors.Is(err, core.ErrUpstream) {
		t.Fatalf("Quote() error = %v, want ErrUpstream", err)
	}
}

func TestServiceRecord(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo, &fakeResolver{}, &fakeProvider{}, "usd")

	id, err := svc.Record(context.Background(), &RecordPaymentRequest{
		Email:         "buyer@example.com",
		Price:         42.50,
		TransactionID: "pi_abc",
		Status:        "succeeded",
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if id == "" {
		t.Error("Record() returned empty id")
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("inserted %d payments, want 1", len(repo.inserted))
	}
	got := repo.inserted[0]
	if got.Email != "buyer@example.com" || got.TransactionID != "pi_abc" {
		t.Errorf("stored payment = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestServiceLatestMissing(t *testing.T) {
	svc := NewService(
		&fakeRepository{byEmail: map[string][]Payment{}},
		&fakeResolver{},
		&fakeProvider{},
		"usd",
	)

	_, err := svc.Latest(context.Background(), "ghost@example.com")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Latest() error = %v, want ErrNotFound", err)
	}
}
