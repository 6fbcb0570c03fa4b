package stripe

import (
	"context"

	stripego "github.com/stripe/stripe-go/v79"
)

func (c *implClient) CreateIntent(ctx context.Context, amount int64, currency, description string) (string, error) {
	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(amount),
		Currency: stripego.String(currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	if description != "" {
		params.Description = stripego.String(description)
	}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.l.Errorf(ctx, "internal.payment.stripe.CreateIntent: %v", err)
		return "", err
	}
	return pi.ClientSecret, nil
}
