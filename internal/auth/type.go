package auth

import "sitekit-api/internal/model"

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token string
	User  model.User
}
