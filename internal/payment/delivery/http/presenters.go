package http

import "sitekit-api/internal/payment"

type createIntentReq struct {
	Amount      int64  `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	Description string `json:"description"`
}

func (req createIntentReq) toInput() payment.CreateIntentInput {
	return payment.CreateIntentInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	}
}

type createIntentResp struct {
	ClientSecret string `json:"client_secret"`
}
