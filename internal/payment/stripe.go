// AngelaMos | 2026
// stripe.go

package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// IntentCreator abstracts the payment provider so the checkout flow
// can be tested without network calls.
type IntentCreator interface {
	CreateIntent(
		ctx context.Context,
		amount int64,
		currency string,
	) (clientSecret string, err error)
}

// StripeProvider creates payment intents through the Stripe API.
type StripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeProvider{api: api}
}

// CreateIntent opens a card payment intent for the given amount in the
// currency's minor unit (cents for usd).
func (p *StripeProvider) CreateIntent(
	ctx context.Context,
	amount int64,
	currency string,
) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
