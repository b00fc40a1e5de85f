package charge

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// PaymentMethodCard is the only payment method charge intents accept.
const PaymentMethodCard = "card"

// Intent is a staged charge created at the provider.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Provider creates charge intents for an amount in minor currency units.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}

// StripeProvider creates Stripe PaymentIntents.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider creates a provider authenticated with the secret key.
// backends may be nil to use Stripe's default endpoints.
func NewStripeProvider(secretKey string, backends *stripe.Backends) *StripeProvider {
	return &StripeProvider{api: client.New(secretKey, backends)}
}

// CreateIntent creates a card-only PaymentIntent.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{PaymentMethodCard}),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
