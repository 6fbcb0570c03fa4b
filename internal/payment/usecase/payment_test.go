package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/internal/model"
	"sitekit-api/internal/payment"
	pkgLog "sitekit-api/pkg/log"
)

type fakeIntentCreator struct {
	secret   string
	err      error
	amount   int64
	currency string
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, amount int64, currency, _ string) (string, error) {
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

func TestCreateIntent(t *testing.T) {
	creator := &fakeIntentCreator{secret: "pi_123_secret_456"}
	uc := New(pkgLog.NewNoop(), creator)

	out, err := uc.CreateIntent(context.Background(), model.Scope{SiteKey: "acme"}, payment.CreateIntentInput{
		Amount:      2500,
		Currency:    " USD ",
		Description: "haircut deposit",
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123_secret_456", out.ClientSecret)
	assert.Equal(t, int64(2500), creator.amount)
	assert.Equal(t, "usd", creator.currency, "currency should be normalized")
}

func TestCreateIntentValidation(t *testing.T) {
	uc := New(pkgLog.NewNoop(), &fakeIntentCreator{secret: "x"})

	_, err := uc.CreateIntent(context.Background(), model.Scope{SiteKey: "acme"}, payment.CreateIntentInput{
		Amount:   0,
		Currency: "usd",
	})
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)

	_, err = uc.CreateIntent(context.Background(), model.Scope{SiteKey: "acme"}, payment.CreateIntentInput{
		Amount:   100,
		Currency: "dollars",
	})
	assert.ErrorIs(t, err, payment.ErrInvalidCurrency)
}

func TestCreateIntentProviderFailure(t *testing.T) {
	creator := &fakeIntentCreator{err: errors.New("stripe: rate limited")}
	uc := New(pkgLog.NewNoop(), creator)

	_, err := uc.CreateIntent(context.Background(), model.Scope{SiteKey: "acme"}, payment.CreateIntentInput{
		Amount:   100,
		Currency: "usd",
	})
	assert.ErrorIs(t, err, payment.ErrProvider)
}
