package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelvm/patrimonio-api/internal/application/attachment"
	"github.com/rafaelvm/patrimonio-api/internal/application/auth"
	"github.com/rafaelvm/patrimonio-api/internal/application/dto"
	"github.com/rafaelvm/patrimonio-api/internal/application/patrimony"
	"github.com/rafaelvm/patrimonio-api/internal/application/report"
	"github.com/rafaelvm/patrimonio-api/internal/application/stats"
	"github.com/rafaelvm/patrimonio-api/internal/application/transfer"
	"github.com/rafaelvm/patrimonio-api/internal/infrastructure/storage"
	apphttp "github.com/rafaelvm/patrimonio-api/internal/interfaces/http"
	"github.com/rafaelvm/patrimonio-api/pkg/logger"
)

// fakePDF gera bytes fixos; o layout real é coberto pelo pacote pdf.
type fakePDF struct{}

func (fakePDF) GeneratePatrimonyReport(_ context.Context, _ *report.Data) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

type apiFixture struct {
	app   *fiber.App
	users *memUserRepo
}

func newAPIApp(t *testing.T) *apiFixture {
	t.Helper()

	users := newMemUserRepo()
	patrimonies := newMemPatrimonyRepo()
	transfers := &memTransferRepo{patrimonies: patrimonies, users: users}
	statsRepo := &memStatsRepo{patrimonies: patrimonies}
	runner := &memTxRunner{transfers: transfers, patrimonies: patrimonies}

	store, err := storage.NewLocalStore(t.TempDir(), t.TempDir())
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	jwtCfg := auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "patrimonio-api"}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(users, jwtCfg),
		PatrimonyUC:  patrimony.NewPatrimonyUseCase(patrimonies),
		TransferUC:   transfer.NewTransferUseCase(patrimonies, transfers, runner),
		StatsUC:      stats.NewStatsUseCase(statsRepo),
		AttachmentUC: attachment.NewAttachmentUseCase(patrimonies, store),
		ReportUC:     report.NewReportUseCase(patrimonies, statsRepo, fakePDF{}),
		Users:        users,
		Store:        store,
		JWTSecret:    testSecret,
		Log:          log,
	})
	return &apiFixture{app: app, users: users}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin cria o usuário e devolve o token.
func (f *apiFixture) registerAndLogin(t *testing.T, username, role string) string {
	t.Helper()
	resp := f.do(t, "POST", "/api/auth/register", "", map[string]any{
		"company_name": "Prefeitura Municipal",
		"department":   "Administração",
		"username":     username,
		"password":     "senha123",
		"role":         role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = f.do(t, "POST", "/api/auth/login", "", map[string]any{
		"username": username,
		"password": "senha123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return decode[dto.LoginResponse](t, resp).Token
}

func TestAPI_FluxoCompleto(t *testing.T) {
	f := newAPIApp(t)
	token := f.registerAndLogin(t, "admin", "admin")

	// Sem token: 401
	resp := f.do(t, "GET", "/api/patrimony/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Cadastro
	resp = f.do(t, "POST", "/api/patrimony/", token, map[string]any{
		"plate":            "EDU001",
		"name":             "Notebook Dell",
		"description":      "Notebook da secretaria",
		"acquisition_date": "2024-03-15",
		"value":            3500.50,
		"department":       "Educação",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.PatrimonyResponse](t, resp)
	assert.Equal(t, "active", created.Status)
	assert.InDelta(t, 3500.50, created.Value, 0.001)

	// Placa duplicada: 400
	resp = f.do(t, "POST", "/api/patrimony/", token, map[string]any{
		"plate":            "EDU001",
		"name":             "Outro bem",
		"acquisition_date": "2024-03-15",
		"value":            100,
		"department":       "Educação",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Plate already exists", decode[dto.ErrorResponse](t, resp).Message)

	// Busca por ID
	resp = f.do(t, "GET", "/api/patrimony/"+created.ID, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "EDU001", decode[dto.PatrimonyResponse](t, resp).Plate)

	// Atualização parcial: só o nome muda
	resp = f.do(t, "PUT", "/api/patrimony/"+created.ID, token, map[string]any{
		"name": "Notebook Dell Latitude",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.PatrimonyResponse](t, resp)
	assert.Equal(t, "Notebook Dell Latitude", updated.Name)
	assert.Equal(t, "EDU001", updated.Plate)
	assert.InDelta(t, 3500.50, updated.Value, 0.001)

	// Transferência: origem capturada do bem
	resp = f.do(t, "POST", "/api/transfer", token, map[string]any{
		"patrimony_id":  created.ID,
		"to_department": "Saúde",
		"reason":        "remanejamento",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	tr := decode[dto.TransferResponse](t, resp)
	assert.Equal(t, "Educação", tr.FromDepartment)
	assert.Equal(t, "Saúde", tr.ToDepartment)
	assert.Equal(t, "Notebook Dell Latitude", tr.PatrimonyName)

	// Mesmo departamento: 400
	resp = f.do(t, "POST", "/api/transfer", token, map[string]any{
		"patrimony_id":  created.ID,
		"to_department": "Saúde",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Estatísticas refletem o estado atual
	resp = f.do(t, "GET", "/api/stats", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	st := decode[dto.StatsResponse](t, resp)
	assert.Equal(t, int64(1), st.Total)
	assert.Equal(t, int64(1), st.Active)
	assert.InDelta(t, 3500.50, st.TotalValue, 0.001)
	require.Len(t, st.ByDepartment, 1)
	assert.Equal(t, "Saúde", st.ByDepartment[0].Department)

	// Departamentos (público)
	resp = f.do(t, "GET", "/api/departments", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Saúde"}, decode[[]string](t, resp))

	// Relatório PDF
	resp = f.do(t, "GET", "/api/patrimony/report", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	// Remoção e 404 subsequente
	resp = f.do(t, "DELETE", "/api/patrimony/"+created.ID, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = f.do(t, "GET", "/api/patrimony/"+created.ID, token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAPI_LoginInvalido(t *testing.T) {
	f := newAPIApp(t)
	f.registerAndLogin(t, "maria", "user")

	for _, creds := range []map[string]any{
		{"username": "maria", "password": "errada"},
		{"username": "naoexiste", "password": "senha123"},
	} {
		resp := f.do(t, "POST", "/api/auth/login", "", creds)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid credentials", decode[dto.ErrorResponse](t, resp).Message)
	}
}

func TestAPI_RegistroDuplicado(t *testing.T) {
	f := newAPIApp(t)
	f.registerAndLogin(t, "maria", "user")

	resp := f.do(t, "POST", "/api/auth/register", "", map[string]any{
		"username": "maria",
		"password": "outrasenha",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already exists", decode[dto.ErrorResponse](t, resp).Message)
}

func TestAPI_ListaUsuariosSomenteAdmin(t *testing.T) {
	f := newAPIApp(t)
	adminToken := f.registerAndLogin(t, "admin", "admin")
	userToken := f.registerAndLogin(t, "maria", "user")

	resp := f.do(t, "GET", "/api/users", userToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = f.do(t, "GET", "/api/users", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]dto.UserResponse](t, resp)
	assert.Len(t, list, 2)
}

func TestAPI_UploadImagemEDownload(t *testing.T) {
	f := newAPIApp(t)
	token := f.registerAndLogin(t, "admin", "admin")

	resp := f.do(t, "POST", "/api/patrimony/", token, map[string]any{
		"plate":            "EDU002",
		"name":             "Projetor",
		"acquisition_date": "2024-01-10",
		"value":            1200,
		"department":       "Educação",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.PatrimonyResponse](t, resp)

	// Multipart com o arquivo da imagem
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "foto.png")
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader("conteudo-png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/patrimony/"+created.ID+"/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	upResp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, upResp.StatusCode)

	up := decode[dto.ImageUploadResponse](t, upResp)
	assert.Equal(t, "Imagem enviada com sucesso", up.Message)
	assert.True(t, strings.HasPrefix(up.ImageURL, "/uploads/"))

	// A URL registrada aparece no bem
	resp = f.do(t, "GET", "/api/patrimony/"+created.ID, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.PatrimonyResponse](t, resp)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, up.ImageURL, *got.ImageURL)

	// E o arquivo é servido de volta (rota pública)
	resp = f.do(t, "GET", up.ImageURL, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "conteudo-png", string(data))
}

func TestAPI_UploadDocumentoTipoInvalido(t *testing.T) {
	f := newAPIApp(t)
	token := f.registerAndLogin(t, "admin", "admin")

	resp := f.do(t, "POST", "/api/patrimony/", token, map[string]any{
		"plate":            "EDU003",
		"name":             "Impressora",
		"acquisition_date": "2024-01-10",
		"value":            800,
		"department":       "Educação",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.PatrimonyResponse](t, resp)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "doc.pdf")
	require.NoError(t, err)
	fmt.Fprint(part, "pdf")
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/patrimony/"+created.ID+"/document/contrato", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	upResp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, upResp.StatusCode)
	assert.Equal(t, "Invalid document type", decode[dto.ErrorResponse](t, upResp).Message)
}

func TestAPI_TraversalNegado(t *testing.T) {
	f := newAPIApp(t)

	resp := f.do(t, "GET", "/uploads/..%2Fsegredo.txt", "", nil)
	assert.Contains(t, []int{fiber.StatusBadRequest, fiber.StatusNotFound}, resp.StatusCode)
}
