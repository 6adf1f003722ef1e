package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("não autorizado")
	ErrSameDepartment  = errors.New("transferência para o mesmo departamento")
	ErrInvalidDocType  = errors.New("tipo de documento inválido")
	ErrNoFile          = errors.New("nenhum arquivo enviado")
	ErrInvalidFileName = errors.New("nome de arquivo inválido")
)
