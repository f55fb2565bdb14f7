package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Maria Silva", "maria@example.com", "segredo123", "11999990000", RoleClient)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Maria Silva", u.Name)
	assert.Equal(t, StatusActive, u.Status)
	assert.NotEqual(t, "segredo123", u.Password, "a senha deve ser armazenada com hash")
	assert.False(t, u.RegisteredAt.IsZero())
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("", "maria@example.com", "segredo123", "", RoleClient)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("Maria", "", "segredo123", "", RoleClient)
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewUser("Maria", "maria@example.com", "segredo123", "", "gerente")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = NewUser("Maria", "maria@example.com", "123", "", RoleClient)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestUser_CheckPassword(t *testing.T) {
	u, err := NewUser("João", "joao@example.com", "minhasenha", "", RoleStaff)
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("minhasenha"))
	assert.False(t, u.CheckPassword("outrasenha"))
}

func TestUser_SetPassword_Weak(t *testing.T) {
	u := &User{}
	err := u.SetPassword("12345")
	assert.ErrorIs(t, err, ErrWeakPassword)
	assert.Empty(t, u.Password)
}

func TestUser_IsActive(t *testing.T) {
	u := &User{Status: StatusActive}
	assert.True(t, u.IsActive())

	u.Status = StatusInactive
	assert.False(t, u.IsActive())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleStaff}).IsAdmin())
	assert.False(t, (&User{Role: RoleClient}).IsAdmin())
}
