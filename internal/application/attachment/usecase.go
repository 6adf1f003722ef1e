package attachment

import (
	"context"
	"fmt"
	"io"

	"github.com/rafaelvm/patrimonio-api/internal/application/dto"
	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

// FileStore porto de gravação de arquivos enviados.
type FileStore interface {
	SaveImage(r io.Reader, originalName string) (name string, size int64, err error)
	SaveDocument(r io.Reader, docType, originalName string) (name string, size int64, err error)
}

// AttachmentUseCase anexa imagens e documentos a um patrimônio: grava o
// arquivo no store e registra a URL pública na coluna correspondente.
type AttachmentUseCase struct {
	patrimonies repository.PatrimonyRepository
	store       FileStore
}

// NewAttachmentUseCase constrói o caso de uso.
func NewAttachmentUseCase(patrimonies repository.PatrimonyRepository, store FileStore) *AttachmentUseCase {
	return &AttachmentUseCase{patrimonies: patrimonies, store: store}
}

// UploadImage grava a imagem e registra /uploads/<nome> no patrimônio.
// O patrimônio precisa existir antes de qualquer I/O de arquivo.
func (uc *AttachmentUseCase) UploadImage(ctx context.Context, patrimonyID string, file io.Reader, originalName string) (*dto.ImageUploadResponse, error) {
	if err := uc.mustExist(ctx, patrimonyID); err != nil {
		return nil, err
	}

	name, _, err := uc.store.SaveImage(file, originalName)
	if err != nil {
		return nil, err
	}
	url := "/uploads/" + name
	if err := uc.setAttachment(ctx, patrimonyID, entity.AttachmentImage, url); err != nil {
		return nil, err
	}
	return &dto.ImageUploadResponse{Message: "Imagem enviada com sucesso", ImageURL: url}, nil
}

// UploadDocument grava o documento do tipo dado (invoice, commitment ou denf)
// e registra /documents/<nome> na coluna do tipo. Tipo desconhecido devolve
// domain.ErrInvalidDocType antes de qualquer I/O.
func (uc *AttachmentUseCase) UploadDocument(ctx context.Context, patrimonyID, docType string, file io.Reader, originalName string) (*dto.DocumentUploadResponse, error) {
	field, ok := entity.AttachmentFieldForDocType(docType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDocType, docType)
	}
	if err := uc.mustExist(ctx, patrimonyID); err != nil {
		return nil, err
	}

	name, size, err := uc.store.SaveDocument(file, docType, originalName)
	if err != nil {
		return nil, err
	}
	url := "/documents/" + name
	if err := uc.setAttachment(ctx, patrimonyID, field, url); err != nil {
		return nil, err
	}
	return &dto.DocumentUploadResponse{
		Message:     "Documento enviado com sucesso",
		DocumentURL: url,
		FileSize:    size,
	}, nil
}

func (uc *AttachmentUseCase) mustExist(ctx context.Context, patrimonyID string) error {
	p, err := uc.patrimonies.GetByID(ctx, patrimonyID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *AttachmentUseCase) setAttachment(ctx context.Context, patrimonyID string, field entity.AttachmentField, url string) error {
	ok, err := uc.patrimonies.SetAttachment(ctx, patrimonyID, field, url)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
