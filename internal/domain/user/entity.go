package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrEmptyEmail   = errors.New("email não pode ser vazio")
	ErrInvalidRole  = errors.New("tipo de usuário inválido")
	ErrWeakPassword = errors.New("senha deve ter pelo menos 6 caracteres")
)

// Role representa o tipo/papel do usuário
type Role string

// Status representa o status do usuário
type Status string

const (
	RoleAdmin  Role = "admin"       // Administrador do sistema
	RoleStaff  Role = "funcionario" // Funcionário do pet shop
	RoleClient Role = "cliente"     // Cliente
)

const (
	StatusActive   Status = "ativo"
	StatusInactive Status = "inativo"
)

// User representa um usuário do sistema (admin, funcionário ou cliente)
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"nome"`
	Email        string     `json:"email"`
	Password     string     `json:"-"` // A senha nunca é retornada nas respostas JSON
	Phone        string     `json:"telefone"`
	Role         Role       `json:"tipo"`
	Status       Status     `json:"status"`
	RegisteredAt time.Time  `json:"data_cadastro"`
	LastAccessAt *time.Time `json:"ultimo_acesso"`
}

// NewUser cria um novo usuário com a senha já em hash
func NewUser(name, email, password, phone string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	switch role {
	case RoleAdmin, RoleStaff, RoleClient:
	default:
		return nil, ErrInvalidRole
	}

	u := &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         role,
		Status:       StatusActive,
		RegisteredAt: time.Now(),
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash bcrypt
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifica se a senha fornecida confere com o hash armazenado
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// IsActive verifica se o usuário está ativo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
