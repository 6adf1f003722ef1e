package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rafaelvm/patrimonio-api/internal/application/dto"
	"github.com/rafaelvm/patrimonio-api/internal/application/transfer"
	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/pkg/logger"
)

// TransferHandler transferência de bens entre departamentos.
type TransferHandler struct {
	uc  *transfer.TransferUseCase
	log *logger.Logger
}

// NewTransferHandler constrói o handler.
func NewTransferHandler(uc *transfer.TransferUseCase, log *logger.Logger) *TransferHandler {
	return &TransferHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Transferir patrimônio de departamento
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTransferRequest  true  "patrimony_id, to_department, reason"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transfer [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	out, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Patrimony not found")
		case errors.Is(err, domain.ErrSameDepartment):
			return fail(c, fiber.StatusBadRequest, "SAME_DEPARTMENT", "Cannot transfer to the same department")
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, fiber.StatusBadRequest, "VALIDATION", validationMessage(err))
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Histórico de transferências
// @Tags         transfers
// @Produce      json
// @Security     BearerAuth
// @Param        patrimony_id  query  string  false  "filtrar por bem"
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("patrimony_id"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar transferência por ID
// @Tags         transfers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID da transferência"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfer/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Transfer not found")
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
