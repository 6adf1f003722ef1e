// Package storage persiste arquivos enviados (imagens e documentos) em disco
// local, sob dois diretórios planos com nomes gerados. O nome original do
// cliente só é usado para derivar a extensão; o nome gravado é sempre um UUID,
// o que elimina colisões e qualquer influência do cliente sobre o caminho.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rafaelvm/patrimonio-api/internal/domain"
)

// LocalStore grava e serve arquivos nos diretórios configurados.
type LocalStore struct {
	imagesDir    string
	documentsDir string
}

// NewLocalStore cria os diretórios se não existirem e devolve o store.
func NewLocalStore(imagesDir, documentsDir string) (*LocalStore, error) {
	for _, dir := range []string{imagesDir, documentsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("criar diretório %s: %w", dir, err)
		}
	}
	return &LocalStore{imagesDir: imagesDir, documentsDir: documentsDir}, nil
}

// SaveImage grava o stream no diretório de imagens com nome <uuid>.<ext>.
// A extensão vem do nome original; "jpg" quando ausente.
func (s *LocalStore) SaveImage(r io.Reader, originalName string) (string, int64, error) {
	name := uuid.NewString() + "." + extensionOf(originalName, "jpg")
	size, err := s.write(s.imagesDir, name, r)
	return name, size, err
}

// SaveDocument grava o stream no diretório de documentos com nome
// <docType>_<uuid>.<ext>. A extensão vem do nome original; "pdf" quando ausente.
func (s *LocalStore) SaveDocument(r io.Reader, docType, originalName string) (string, int64, error) {
	name := docType + "_" + uuid.NewString() + "." + extensionOf(originalName, "pdf")
	size, err := s.write(s.documentsDir, name, r)
	return name, size, err
}

// OpenImage abre uma imagem gravada e devolve também o content type derivado
// da extensão. Nomes com separador de caminho ou ".." são rejeitados.
func (s *LocalStore) OpenImage(name string) (*os.File, string, error) {
	f, err := s.open(s.imagesDir, name)
	if err != nil {
		return nil, "", err
	}
	return f, imageContentType(name), nil
}

// OpenDocument abre um documento gravado (sempre servido como PDF).
func (s *LocalStore) OpenDocument(name string) (*os.File, error) {
	return s.open(s.documentsDir, name)
}

func (s *LocalStore) write(dir, name string, r io.Reader) (int64, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("criar arquivo: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("gravar arquivo: %w", err)
	}
	return size, nil
}

func (s *LocalStore) open(dir, name string) (*os.File, error) {
	// O parâmetro vem direto da URL: restringir ao basename dentro do diretório.
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return nil, domain.ErrInvalidFileName
	}
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("abrir arquivo: %w", err)
	}
	return f, nil
}

// extensionOf extrai a extensão do nome original (sem o ponto), limpa de
// caracteres de caminho; devolve def quando não há extensão utilizável.
func extensionOf(originalName, def string) string {
	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(originalName)), ".")
	if ext == "" || strings.ContainsAny(ext, `/\`) {
		return def
	}
	return strings.ToLower(ext)
}

// imageContentType deduz o content type da extensão do arquivo.
func imageContentType(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
