package services_test

import (
	"testing"

	"parrotshop/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("parrot-secret"), bcrypt.MinCost)
	assert.NoError(t, err)
	return services.NewAuthService("admin", string(hash), "test_jwt_secret")
}

func TestAuthService_Login(t *testing.T) {
	service := newTestAuthService(t)

	token, err := service.Login("admin", "parrot-secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "admin", claims["role"])
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service := newTestAuthService(t)

	token, err := service.Login("admin", "wrong-password")
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	service := newTestAuthService(t)

	token, err := service.Login("root", "parrot-secret")
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	service := newTestAuthService(t)

	claims, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("parrot-secret"), bcrypt.MinCost)
	issuer := services.NewAuthService("admin", string(hash), "secret_a")
	verifier := services.NewAuthService("admin", string(hash), "secret_b")

	token, err := issuer.Login("admin", "parrot-secret")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
