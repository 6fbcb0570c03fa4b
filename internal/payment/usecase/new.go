package usecase

import (
	"sitekit-api/internal/payment"
	pkgLog "sitekit-api/pkg/log"
)

type usecase struct {
	l      pkgLog.Logger
	intent payment.IntentCreator
}

func New(l pkgLog.Logger, intent payment.IntentCreator) payment.UseCase {
	return &usecase{
		l:      l,
		intent: intent,
	}
}
