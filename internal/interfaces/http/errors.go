package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelvm/patrimonio-api/internal/application/dto"
	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/pkg/logger"
)

// fail responde um erro JSON com o código e a mensagem dados.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// internalError loga a causa e responde 500 genérico, sem vazar detalhes.
func internalError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("internal error")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", "Internal server error")
}

// validationMessage extrai a mensagem legível de um erro de validação
// (texto após o sentinel "entrada inválida: ...").
func validationMessage(err error) string {
	msg := err.Error()
	if prefix := domain.ErrInvalidInput.Error() + ": "; len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
