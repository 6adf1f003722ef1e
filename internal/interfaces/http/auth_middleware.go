package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
	"github.com/rafaelvm/patrimonio-api/pkg/jwt"
)

// Locals keys preenchidas pelo AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalUser   = "user"
)

// AuthMiddleware valida o Bearer Token JWT e confirma no banco que o usuário
// ainda existe. Um token válido de usuário removido é rejeitado na hora; não
// há cache de sessão.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Ausente ou fora da forma exata "Bearer <token>": mesma resposta.
		token, ok := strings.CutPrefix(c.Get("Authorization"), "Bearer ")
		if !ok {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header required")
		}

		userID, _, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
		}
		// Subject precisa ser um uuid válido antes de ir à base.
		if _, err := uuid.Parse(userID); err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_USER", "Invalid user")
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_USER", "Invalid user")
		}
		if user == nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_USER", "Invalid user")
		}

		// O role efetivo é o do banco, não o do token.
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalRole, user.Role)
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireAdmin exige role admin; usar depois do AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil || !user.IsAdmin() {
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "Admin access required")
		}
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (após o middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devolve o role do contexto (após o middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetUser devolve o usuário autenticado completo.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}
