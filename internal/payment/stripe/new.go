package stripe

import (
	"github.com/stripe/stripe-go/v79/client"

	"sitekit-api/internal/payment"
	pkgLog "sitekit-api/pkg/log"
)

type implClient struct {
	l   pkgLog.Logger
	api *client.API
}

// New builds an IntentCreator over the official Stripe client.
func New(l pkgLog.Logger, secretKey string) payment.IntentCreator {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &implClient{
		l:   l,
		api: api,
	}
}
