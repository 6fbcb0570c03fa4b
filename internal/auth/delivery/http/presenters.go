package http

import (
	"sitekit-api/internal/auth"
	"sitekit-api/internal/model"
)

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (req loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}
}

type loginResp struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func newLoginResp(o auth.LoginOutput) loginResp {
	return loginResp{
		Token: o.Token,
		User:  o.User,
	}
}
