package dto

import (
	"time"

	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
)

// RegisterRequest entrada para registro de usuário (password em texto, o
// hash é feito no use case).
type RegisterRequest struct {
	CompanyName string  `json:"company_name"`
	Department  string  `json:"department"`
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Email       *string `json:"email"`
	Role        *string `json:"role"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse saída pública de um usuário (nunca inclui o hash).
type UserResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Department  string    `json:"department"`
	Username    string    `json:"username"`
	Email       *string   `json:"email"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse saída do login: token JWT + usuário público.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse converte a entidade para a visão pública.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		CompanyName: u.CompanyName,
		Department:  u.Department,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
