package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/internal/auth"
	"sitekit-api/internal/auth/repository"
	"sitekit-api/internal/model"
	"sitekit-api/pkg/encrypter"
	pkgLog "sitekit-api/pkg/log"
	"sitekit-api/pkg/scope"
)

type fakeRepo struct {
	users map[string]model.User
}

func (r *fakeRepo) GetByUsername(_ context.Context, sc model.Scope, username string) (model.User, error) {
	u, ok := r.users[username]
	if !ok || u.SiteKey != sc.SiteKey {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeRepo) Detail(_ context.Context, sc model.Scope, id string) (model.User, error) {
	for _, u := range r.users {
		if u.ID == id && u.SiteKey == sc.SiteKey {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestUsecase(t *testing.T, users map[string]model.User) auth.UseCase {
	t.Helper()
	return New(pkgLog.NewNoop(), &fakeRepo{users: users}, scope.New(testSecret))
}

func seedUser(t *testing.T, password string) model.User {
	t.Helper()
	hash, err := encrypter.HashPassword(password)
	require.NoError(t, err)
	return model.User{
		ID:           "u-1",
		SiteKey:      "acme",
		Username:     "owner",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
}

func TestLoginIssuesScopedToken(t *testing.T) {
	usr := seedUser(t, "hunter22")
	uc := newTestUsecase(t, map[string]model.User{"owner": usr})
	sc := model.Scope{SiteKey: "acme"}

	out, err := uc.Login(context.Background(), sc, auth.LoginInput{
		Username: "owner",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, usr.ID, out.User.ID)

	payload, err := scope.New(testSecret).Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", payload.UserID)
	assert.Equal(t, model.RoleAdmin, payload.Role)
	assert.Equal(t, "acme", payload.SiteKey)
}

func TestLoginWrongPassword(t *testing.T) {
	uc := newTestUsecase(t, map[string]model.User{"owner": seedUser(t, "hunter22")})

	_, err := uc.Login(context.Background(), model.Scope{SiteKey: "acme"}, auth.LoginInput{
		Username: "owner",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	uc := newTestUsecase(t, map[string]model.User{"owner": seedUser(t, "hunter22")})

	_, err := uc.Login(context.Background(), model.Scope{SiteKey: "acme"}, auth.LoginInput{
		Username: "nobody",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginOtherTenantUserRejected(t *testing.T) {
	uc := newTestUsecase(t, map[string]model.User{"owner": seedUser(t, "hunter22")})

	_, err := uc.Login(context.Background(), model.Scope{SiteKey: "other"}, auth.LoginInput{
		Username: "owner",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	usr := seedUser(t, "hunter22")
	uc := newTestUsecase(t, map[string]model.User{"owner": usr})

	got, err := uc.Me(context.Background(), model.Scope{SiteKey: "acme", UserID: "u-1"})
	require.NoError(t, err)
	assert.Equal(t, usr.Username, got.Username)

	_, err = uc.Me(context.Background(), model.Scope{SiteKey: "acme", UserID: "missing"})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
