package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status reconhecidos de um patrimônio. Qualquer outro valor é aceito e
// armazenado, mas não entra nos buckets de estatística.
const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusMaintenance = "maintenance"
	StatusWrittenOff  = "written_off"
)

// AttachmentField identifica a coluna de referência de arquivo no patrimônio.
type AttachmentField string

const (
	AttachmentImage      AttachmentField = "image_url"
	AttachmentInvoice    AttachmentField = "invoice_file"
	AttachmentCommitment AttachmentField = "commitment_file"
	AttachmentDenfSe     AttachmentField = "denf_se_file"
)

// Tipos de documento aceitos no upload (path param doc_type).
const (
	DocTypeInvoice    = "invoice"
	DocTypeCommitment = "commitment"
	DocTypeDenf       = "denf"
)

// AttachmentFieldForDocType mapeia o doc_type da URL para a coluna correspondente.
// Retorna false para tipos desconhecidos.
func AttachmentFieldForDocType(docType string) (AttachmentField, bool) {
	switch docType {
	case DocTypeInvoice:
		return AttachmentInvoice, true
	case DocTypeCommitment:
		return AttachmentCommitment, true
	case DocTypeDenf:
		return AttachmentDenfSe, true
	}
	return "", false
}

// Patrimony representa um bem patrimonial com metadados de aquisição e custódia.
// Value é decimal de ponto fixo de ponta a ponta; a conversão para float só
// acontece na serialização da resposta.
type Patrimony struct {
	ID               string
	Plate            string // identificador humano único (placa)
	Name             string
	Description      string
	AcquisitionDate  time.Time
	Value            decimal.Decimal
	Department       string
	Status           string
	InvoiceNumber    *string
	CommitmentNumber *string
	DenfSeNumber     *string
	InvoiceFile      *string
	CommitmentFile   *string
	DenfSeFile       *string
	ImageURL         *string
	CreatedBy        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
