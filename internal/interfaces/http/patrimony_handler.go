package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rafaelvm/patrimonio-api/internal/application/dto"
	"github.com/rafaelvm/patrimonio-api/internal/application/patrimony"
	"github.com/rafaelvm/patrimonio-api/internal/application/report"
	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
	"github.com/rafaelvm/patrimonio-api/pkg/logger"
)

// PatrimonyHandler CRUD de patrimônio, departamentos e relatório.
type PatrimonyHandler struct {
	uc     *patrimony.PatrimonyUseCase
	report *report.ReportUseCase
	log    *logger.Logger
}

// NewPatrimonyHandler constrói o handler.
func NewPatrimonyHandler(uc *patrimony.PatrimonyUseCase, reportUC *report.ReportUseCase, log *logger.Logger) *PatrimonyHandler {
	return &PatrimonyHandler{uc: uc, report: reportUC, log: log}
}

// Create godoc
// @Summary      Cadastrar patrimônio
// @Tags         patrimony
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePatrimonyRequest  true  "dados do bem"
// @Success      201   {object}  dto.PatrimonyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/patrimony [post]
func (h *PatrimonyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePatrimonyRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	out, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return fail(c, fiber.StatusBadRequest, "PLATE_EXISTS", "Plate already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, fiber.StatusBadRequest, "VALIDATION", validationMessage(err))
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar patrimônios
// @Tags         patrimony
// @Produce      json
// @Security     BearerAuth
// @Param        department  query  string  false  "filtrar por departamento"
// @Param        status      query  string  false  "filtrar por status"
// @Success      200  {array}  dto.PatrimonyResponse
// @Router       /api/patrimony [get]
func (h *PatrimonyHandler) List(c *fiber.Ctx) error {
	filter := repository.PatrimonyFilter{
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar patrimônio por ID
// @Tags         patrimony
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do bem"
// @Success      200  {object}  dto.PatrimonyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/patrimony/{id} [get]
func (h *PatrimonyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Patrimony not found")
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar patrimônio (parcial)
// @Tags         patrimony
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID do bem"
// @Param        body  body  dto.UpdatePatrimonyRequest  true  "campos a alterar"
// @Success      200   {object}  dto.PatrimonyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/patrimony/{id} [put]
func (h *PatrimonyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePatrimonyRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Patrimony not found")
		case errors.Is(err, domain.ErrDuplicate):
			return fail(c, fiber.StatusBadRequest, "PLATE_EXISTS", "Plate already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, fiber.StatusBadRequest, "VALIDATION", validationMessage(err))
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover patrimônio
// @Tags         patrimony
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do bem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/patrimony/{id} [delete]
func (h *PatrimonyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Patrimony not found")
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Patrimony deleted"})
}

// Departments godoc
// @Summary      Listar departamentos com patrimônio
// @Tags         patrimony
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/departments [get]
func (h *PatrimonyHandler) Departments(c *fiber.Ctx) error {
	out, err := h.uc.Departments(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Relatório do acervo em PDF
// @Tags         patrimony
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        department  query  string  false  "restringir a um departamento"
// @Success      200  {file}  binary
// @Router       /api/patrimony/report [get]
func (h *PatrimonyHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.report.Generate(c.Context(), c.Query("department"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	filename := fmt.Sprintf("relatorio-patrimonio-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
