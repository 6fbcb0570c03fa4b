package usecase

import (
	"context"
	"strings"

	"sitekit-api/internal/model"
	"sitekit-api/internal/payment"
)

func (uc *usecase) CreateIntent(ctx context.Context, sc model.Scope, ip payment.CreateIntentInput) (payment.CreateIntentOutput, error) {
	if ip.Amount <= 0 {
		return payment.CreateIntentOutput{}, payment.ErrInvalidAmount
	}

	currency := strings.ToLower(strings.TrimSpace(ip.Currency))
	if len(currency) != 3 {
		return payment.CreateIntentOutput{}, payment.ErrInvalidCurrency
	}

	secret, err := uc.intent.CreateIntent(ctx, ip.Amount, currency, ip.Description)
	if err != nil {
		uc.l.Errorf(ctx, "internal.payment.usecase.CreateIntent: %v", err)
		return payment.CreateIntentOutput{}, payment.ErrProvider
	}

	return payment.CreateIntentOutput{ClientSecret: secret}, nil
}
