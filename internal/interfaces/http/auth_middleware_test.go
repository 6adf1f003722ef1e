package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelvm/patrimonio-api/internal/application/dto"
	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	apphttp "github.com/rafaelvm/patrimonio-api/internal/interfaces/http"
	"github.com/rafaelvm/patrimonio-api/pkg/jwt"
)

const testSecret = "middleware-test-secret"

// ID de usuário válido (o middleware exige subject uuid).
var testUserID = uuid.NewString()

func newMiddlewareApp(users *memUserRepo) *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testSecret, users))
	protected.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	protected.Get("/admin-only", apphttp.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthMiddleware_SemHeader(t *testing.T) {
	app := newMiddlewareApp(newMemUserRepo())

	req := httptest.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Authorization header required", body.Message)
}

func TestAuthMiddleware_HeaderMalformado(t *testing.T) {
	// Header fora da forma "Bearer <token>" recebe a mesma resposta da ausência;
	// o esquema é case-sensitive.
	app := newMiddlewareApp(newMemUserRepo())

	for _, header := range []string{"Basic abc", "Bearer", "token-sem-esquema", "bearer abc", "BEARER abc"} {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)

		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Authorization header required", body.Message, "header %q", header)
	}
}

func TestAuthMiddleware_TokenIlegivel(t *testing.T) {
	// Forma correta, token que não é um JWT.
	app := newMiddlewareApp(newMemUserRepo())

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer nao-e-um-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid token", body.Message)
}

func TestAuthMiddleware_TokenAssinaturaErrada(t *testing.T) {
	app := newMiddlewareApp(newMemUserRepo())

	token, err := jwt.Generate("outro-secret", "user-1", "user", "patrimonio-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid token", body.Message)
}

func TestAuthMiddleware_UsuarioRemovido(t *testing.T) {
	// Token válido de usuário que não existe mais na base.
	app := newMiddlewareApp(newMemUserRepo())

	token, err := jwt.Generate(testSecret, uuid.NewString(), "user", "patrimonio-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid user", body.Message)
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	users := newMemUserRepo()
	require.NoError(t, users.Create(nil, &entity.User{ID: testUserID, Username: "maria", Role: "user"}))
	app := newMiddlewareApp(users)

	token, err := jwt.Generate(testSecret, testUserID, "user", "patrimonio-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "user", body["role"])
}

func TestAuthMiddleware_RoleVemDoBanco(t *testing.T) {
	// Token antigo diz "user", mas o banco foi promovido a admin: vale o banco.
	users := newMemUserRepo()
	require.NoError(t, users.Create(nil, &entity.User{ID: testUserID, Username: "maria", Role: "admin"}))
	app := newMiddlewareApp(users)

	token, err := jwt.Generate(testSecret, testUserID, "user", "patrimonio-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_NaoAdmin(t *testing.T) {
	users := newMemUserRepo()
	require.NoError(t, users.Create(nil, &entity.User{ID: testUserID, Username: "maria", Role: "user"}))
	app := newMiddlewareApp(users)

	token, err := jwt.Generate(testSecret, testUserID, "user", "patrimonio-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Admin access required", body.Message)
}
