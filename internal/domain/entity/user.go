package entity

import "time"

// Roles reconhecidos. Role é texto livre na base; "admin" é comparado por igualdade exata.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa um usuário do sistema (credencial + identificação organizacional).
type User struct {
	ID           string
	CompanyName  string
	Department   string
	Username     string
	PasswordHash string
	Email        *string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica se o usuário possui o papel de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
