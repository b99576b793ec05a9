package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/infrastructure/memory"
	"github.com/luxeliving/catalog-api/pkg/helpers"
)

func newAuthFixture(t *testing.T) (*AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(store.Users(), jwt, quietLogger()), store
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	u, token, err := svc.Register(context.Background(), RegisterInput{
		Email:    "sarah@example.com",
		Password: "password123",
		Name:     "Sarah",
		Role:     "AGENT",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, entity.RoleAgent, u.Role)
	require.NotEmpty(t, token)

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "AGENT", claims.Role)
}

func TestRegisterDefaults(t *testing.T) {
	svc, _ := newAuthFixture(t)

	u, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "anon@example.com",
		Password: "password123",
		Role:     "WIZARD",
	})
	require.NoError(t, err)
	assert.Equal(t, "User", u.Name)
	assert.Equal(t, entity.RoleBuyer, u.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Register(context.Background(), RegisterInput{Email: "dup@example.com", Password: "password123"})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), RegisterInput{Email: "dup@example.com", Password: "different456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	reg, _, err := svc.Register(context.Background(), RegisterInput{Email: "buyer@example.com", Password: "password123"})
	require.NoError(t, err)

	u, token, err := svc.Login(context.Background(), "buyer@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), "buyer@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "ghost@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
