package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/internal/infrastructure/storage"
	"github.com/rafaelvm/patrimonio-api/pkg/logger"
)

// FilesHandler serve imagens e documentos gravados localmente.
type FilesHandler struct {
	store *storage.LocalStore
	log   *logger.Logger
}

// NewFilesHandler constrói o handler.
func NewFilesHandler(store *storage.LocalStore, log *logger.Logger) *FilesHandler {
	return &FilesHandler{store: store, log: log}
}

// ServeImage godoc
// @Summary      Servir imagem enviada
// @Tags         files
// @Produce      image/*
// @Param        filename  path  string  true  "nome do arquivo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /uploads/{filename} [get]
func (h *FilesHandler) ServeImage(c *fiber.Ctx) error {
	f, contentType, err := h.store.OpenImage(c.Params("filename"))
	if err != nil {
		return h.fileError(c, err)
	}
	defer f.Close()

	c.Set(fiber.HeaderContentType, contentType)
	return h.stream(c, f)
}

// ServeDocument godoc
// @Summary      Servir documento enviado
// @Tags         files
// @Produce      application/pdf
// @Param        filename  path  string  true  "nome do arquivo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /documents/{filename} [get]
func (h *FilesHandler) ServeDocument(c *fiber.Ctx) error {
	f, err := h.store.OpenDocument(c.Params("filename"))
	if err != nil {
		return h.fileError(c, err)
	}
	defer f.Close()

	c.Set(fiber.HeaderContentType, "application/pdf")
	return h.stream(c, f)
}

func (h *FilesHandler) stream(c *fiber.Ctx, f io.Reader) error {
	data, err := io.ReadAll(f)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.Send(data)
}

func (h *FilesHandler) fileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidFileName):
		return fail(c, fiber.StatusBadRequest, "INVALID_FILENAME", "Invalid file name")
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "File not found")
	}
	return internalError(c, h.log, err)
}
