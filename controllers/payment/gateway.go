package paymentControllers

import (
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway is the outbound half of the payment provider. Webhook
// verification is a pure function of payload+header+secret and lives in
// the handler; only the remote calls sit behind this interface.
type Gateway interface {
	CreateCustomer(email, name string, metadata map[string]string) (string, error)
	CreateIntent(amountCents int64, customerID string, metadata map[string]string) (id, clientSecret string, err error)
}

type stripeGateway struct {
	api *client.API
}

// NewStripeGateway wraps an explicitly constructed Stripe client.
func NewStripeGateway(api *client.API) Gateway {
	return &stripeGateway{api: api}
}

func (g *stripeGateway) CreateCustomer(email, name string, metadata map[string]string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	customer, err := g.api.Customers.New(params)
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

func (g *stripeGateway) CreateIntent(amountCents int64, customerID string, metadata map[string]string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Customer: stripe.String(customerID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", "", err
	}
	return intent.ID, intent.ClientSecret, nil
}
