package dto

import (
	"time"

	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
)

// dateLayout formato das datas de aquisição no JSON.
const dateLayout = "2006-01-02"

// CreatePatrimonyRequest entrada para criação de patrimônio. Value chega como
// número JSON e é convertido para decimal no use case.
type CreatePatrimonyRequest struct {
	Plate            string  `json:"plate"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	AcquisitionDate  string  `json:"acquisition_date"`
	Value            float64 `json:"value"`
	Department       string  `json:"department"`
	Status           *string `json:"status"`
	InvoiceNumber    *string `json:"invoice_number"`
	CommitmentNumber *string `json:"commitment_number"`
	DenfSeNumber     *string `json:"denf_se_number"`
}

// UpdatePatrimonyRequest entrada para atualização parcial: campos ausentes no
// corpo (ponteiros nil) preservam o valor atual.
type UpdatePatrimonyRequest struct {
	Plate            *string  `json:"plate"`
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	AcquisitionDate  *string  `json:"acquisition_date"`
	Value            *float64 `json:"value"`
	Department       *string  `json:"department"`
	Status           *string  `json:"status"`
	InvoiceNumber    *string  `json:"invoice_number"`
	CommitmentNumber *string  `json:"commitment_number"`
	DenfSeNumber     *string  `json:"denf_se_number"`
}

// PatrimonyResponse saída pública de um patrimônio. Value volta como número
// JSON; acquisition_date no formato YYYY-MM-DD.
type PatrimonyResponse struct {
	ID               string    `json:"id"`
	Plate            string    `json:"plate"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	AcquisitionDate  string    `json:"acquisition_date"`
	Value            float64   `json:"value"`
	Department       string    `json:"department"`
	Status           string    `json:"status"`
	InvoiceNumber    *string   `json:"invoice_number"`
	CommitmentNumber *string   `json:"commitment_number"`
	DenfSeNumber     *string   `json:"denf_se_number"`
	InvoiceFile      *string   `json:"invoice_file"`
	CommitmentFile   *string   `json:"commitment_file"`
	DenfSeFile       *string   `json:"denf_se_file"`
	ImageURL         *string   `json:"image_url"`
	CreatedBy        *string   `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ImageUploadResponse saída do upload de imagem.
type ImageUploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
}

// DocumentUploadResponse saída do upload de documento.
type DocumentUploadResponse struct {
	Message     string `json:"message"`
	DocumentURL string `json:"document_url"`
	FileSize    int64  `json:"file_size"`
}

// NewPatrimonyResponse converte a entidade para a visão pública.
func NewPatrimonyResponse(p *entity.Patrimony) PatrimonyResponse {
	return PatrimonyResponse{
		ID:               p.ID,
		Plate:            p.Plate,
		Name:             p.Name,
		Description:      p.Description,
		AcquisitionDate:  p.AcquisitionDate.Format(dateLayout),
		Value:            p.Value.InexactFloat64(),
		Department:       p.Department,
		Status:           p.Status,
		InvoiceNumber:    p.InvoiceNumber,
		CommitmentNumber: p.CommitmentNumber,
		DenfSeNumber:     p.DenfSeNumber,
		InvoiceFile:      p.InvoiceFile,
		CommitmentFile:   p.CommitmentFile,
		DenfSeFile:       p.DenfSeFile,
		ImageURL:         p.ImageURL,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// NewPatrimonyResponses converte uma lista, devolvendo slice vazio (não nil)
// para listas vazias.
func NewPatrimonyResponses(items []*entity.Patrimony) []PatrimonyResponse {
	out := make([]PatrimonyResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewPatrimonyResponse(p))
	}
	return out
}

// ParseAcquisitionDate interpreta a data de aquisição vinda do JSON.
func ParseAcquisitionDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
