package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
)

func testUser() *userdomain.User {
	return &userdomain.User{
		ID:    "11111111-1111-1111-1111-111111111111",
		Email: "maria@example.com",
		Role:  userdomain.RoleAdmin,
	}
}

func TestNewJWTService_MissingKey(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestNewJWTService_DefaultExpiration(t *testing.T) {
	svc, err := NewJWTService("chave-de-teste", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.expiration)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService("chave-de-teste", time.Hour)
	require.NoError(t, err)

	u := testUser()
	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, string(userdomain.RoleAdmin), claims.Role)
	assert.Equal(t, u.ID, claims.Subject)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService("chave-de-teste", time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc, err := NewJWTService("chave-de-teste", time.Hour)
	require.NoError(t, err)

	_, err = svc.ValidateToken("isto-nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateToken_WrongKey(t *testing.T) {
	issuer, err := NewJWTService("chave-certa", time.Hour)
	require.NoError(t, err)
	validator, err := NewJWTService("chave-errada", time.Hour)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
