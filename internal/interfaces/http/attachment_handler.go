package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/rafaelvm/patrimonio-api/internal/application/attachment"
	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/pkg/logger"
)

// AttachmentHandler upload de imagem e documentos de um patrimônio.
type AttachmentHandler struct {
	uc  *attachment.AttachmentUseCase
	log *logger.Logger
}

// NewAttachmentHandler constrói o handler.
func NewAttachmentHandler(uc *attachment.AttachmentUseCase, log *logger.Logger) *AttachmentHandler {
	return &AttachmentHandler{uc: uc, log: log}
}

// UploadImage godoc
// @Summary      Enviar imagem do patrimônio
// @Tags         patrimony
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "ID do bem"
// @Param        file  formData  file    true  "imagem"
// @Success      200   {object}  dto.ImageUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/patrimony/{id}/image [post]
func (h *AttachmentHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := firstFormFile(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "NO_FILE", "No file provided")
	}
	file, err := fh.Open()
	if err != nil {
		return internalError(c, h.log, err)
	}
	defer file.Close()

	out, err := h.uc.UploadImage(c.Context(), c.Params("id"), file, fh.Filename)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Patrimony not found")
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// UploadDocument godoc
// @Summary      Enviar documento do patrimônio
// @Tags         patrimony
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true  "ID do bem"
// @Param        doc_type  path      string  true  "invoice | commitment | denf"
// @Param        file      formData  file    true  "documento"
// @Success      200   {object}  dto.DocumentUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/patrimony/{id}/document/{doc_type} [post]
func (h *AttachmentHandler) UploadDocument(c *fiber.Ctx) error {
	docType := c.Params("doc_type")

	fh, err := firstFormFile(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "NO_FILE", "No file provided")
	}
	file, err := fh.Open()
	if err != nil {
		return internalError(c, h.log, err)
	}
	defer file.Close()

	out, err := h.uc.UploadDocument(c.Context(), c.Params("id"), docType, file, fh.Filename)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDocType):
			return fail(c, fiber.StatusBadRequest, "INVALID_DOC_TYPE", "Invalid document type")
		case errors.Is(err, domain.ErrNotFound):
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Patrimony not found")
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// firstFormFile devolve o primeiro arquivo do multipart, qualquer que seja o
// nome do campo.
func firstFormFile(c *fiber.Ctx) (*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	for _, headers := range form.File {
		if len(headers) > 0 {
			return headers[0], nil
		}
	}
	return nil, domain.ErrNoFile
}
