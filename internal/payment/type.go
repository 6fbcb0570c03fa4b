package payment

type CreateIntentInput struct {
	// Amount is in the currency's smallest unit, e.g. cents.
	Amount      int64
	Currency    string
	Description string
}

type CreateIntentOutput struct {
	ClientSecret string
}
