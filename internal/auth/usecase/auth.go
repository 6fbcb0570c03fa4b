package usecase

import (
	"context"

	"sitekit-api/internal/auth"
	"sitekit-api/internal/auth/repository"
	"sitekit-api/internal/model"
	"sitekit-api/pkg/encrypter"
	"sitekit-api/pkg/scope"
)

// Login verifies credentials within the tenant and issues a JWT carrying
// the user's identity, role and site key. Unknown user and wrong password
// collapse into the same error so the endpoint does not leak which
// usernames exist.
func (uc *usecase) Login(ctx context.Context, sc model.Scope, ip auth.LoginInput) (auth.LoginOutput, error) {
	usr, err := uc.repo.GetByUsername(ctx, sc, ip.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetByUsername: %v", err)
		return auth.LoginOutput{}, err
	}

	if !encrypter.CheckPasswordHash(ip.Password, usr.PasswordHash) {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.CreateToken(scope.Payload{
		UserID:   usr.ID,
		Username: usr.Username,
		Role:     usr.Role,
		SiteKey:  usr.SiteKey,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.CreateToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{
		Token: token,
		User:  usr,
	}, nil
}

// Me returns the authenticated user's account.
func (uc *usecase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Me: %v", err)
		return model.User{}, err
	}
	return usr, nil
}
