package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/validador-ec/internal/application/dto"
	"github.com/jhoicas/validador-ec/internal/application/usecase"
	"github.com/jhoicas/validador-ec/internal/infrastructure/pdf"
	infrasri "github.com/jhoicas/validador-ec/internal/infrastructure/sri"
	apphttp "github.com/jhoicas/validador-ec/internal/interfaces/http"
	"github.com/jhoicas/validador-ec/pkg/logger"
	pkgjwt "github.com/jhoicas/validador-ec/pkg/jwt"
)

const facturaXML = `<?xml version="1.0" encoding="UTF-8"?>
<factura id="comprobante" version="1.1.0">
  <infoTributaria>
    <ambiente>1</ambiente><tipoEmision>1</tipoEmision>
    <razonSocial>EMPRESA DE PRUEBA S.A.</razonSocial>
    <ruc>0992397535001</ruc>
    <claveAcceso>0101202401099239753500110010010000001231234567817</claveAcceso>
    <codDoc>01</codDoc><estab>001</estab><ptoEmi>001</ptoEmi><secuencial>000000123</secuencial>
  </infoTributaria>
  <infoFactura>
    <fechaEmision>01/01/2024</fechaEmision>
    <tipoIdentificacionComprador>07</tipoIdentificacionComprador>
    <razonSocialComprador>CONSUMIDOR FINAL</razonSocialComprador>
    <identificacionComprador>9999999999999</identificacionComprador>
    <totalSinImpuestos>10.00</totalSinImpuestos>
    <importeTotal>11.50</importeTotal>
  </infoFactura>
</factura>`

func newTestApp(secret string, batchLimit int) *fiber.App {
	log := logger.Nop()
	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName:      "validador-ec",
		IdentificationUC: usecase.NewIdentificationUseCase(batchLimit, pdf.NewMarotoReportGenerator("validador-ec"), log),
		VoucherUC:        usecase.NewVoucherUseCase(infrasri.NewVoucherReader(), log),
		JWTSecret:        secret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, auth string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	resp := doJSON(t, newTestApp("", 10), http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
	assert.Equal(t, "ok", decode[dto.HealthResponse](t, resp).Status)
}

func TestValidateEndpoint(t *testing.T) {
	app := newTestApp("", 10)

	resp := doJSON(t, app, http.MethodPost, "/api/identifications/validate", dto.ValidateRequest{Number: "1760001550001"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ValidationResponse](t, resp)
	assert.True(t, out.Valid)
	assert.Equal(t, "ruc_public", out.DocumentType)

	resp = doJSON(t, app, http.MethodPost, "/api/identifications/validate", dto.ValidateRequest{Number: "12345"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = decode[dto.ValidationResponse](t, resp)
	assert.False(t, out.Valid)
	assert.Equal(t, "Invalid document length. Cedula must have 10 digits, RUC must have 13 digits", out.Error)
	assert.Equal(t, "document_length", out.ErrorKind)

	resp = doJSON(t, app, http.MethodPost, "/api/identifications/validate", dto.ValidateRequest{Number: "0926687856", DocumentType: "dni"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestValidateEndpoint_CuerpoInvalido(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/identifications/validate", strings.NewReader("{no json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := newTestApp("", 10).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestDescribeEndpoint(t *testing.T) {
	resp := doJSON(t, newTestApp("", 10), http.MethodGet, "/api/identifications/0992397535001", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.DetailsResponse](t, resp)
	assert.True(t, out.Valid)
	assert.Equal(t, "ruc_private", out.DocumentType)
	assert.Equal(t, 9, out.ProvinceCode)
	assert.Equal(t, "Guayas", out.ProvinceName)
	assert.Equal(t, "001", out.EstablishmentCode)
	assert.Empty(t, out.Cedula)
}

func TestBatchEndpoint(t *testing.T) {
	app := newTestApp("", 2)

	resp := doJSON(t, app, http.MethodPost, "/api/identifications/batch", dto.BatchRequest{Numbers: []string{"0926687856", "0926687858"}}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.BatchResponse](t, resp)
	assert.Equal(t, 1, out.ValidCount)
	assert.Equal(t, 1, out.InvalidCount)

	resp = doJSON(t, app, http.MethodPost, "/api/identifications/batch", dto.BatchRequest{Numbers: []string{"1", "2", "3"}}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestBatchEndpoint_RequiereTokenConSecret(t *testing.T) {
	app := newTestApp(testJWTSecret, 10)
	body := dto.BatchRequest{Numbers: []string{"0926687856"}}

	resp := doJSON(t, app, http.MethodPost, "/api/identifications/batch", body, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/identifications/batch", body, bearer(t, pkgjwt.ScopeReport))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/identifications/batch", body, bearer(t, pkgjwt.ScopeBatch))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// La validación individual sigue siendo pública.
	resp = doJSON(t, app, http.MethodPost, "/api/identifications/validate", dto.ValidateRequest{Number: "0926687856"}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestReportEndpoint(t *testing.T) {
	resp := doJSON(t, newTestApp("", 10), http.MethodPost, "/api/identifications/report", dto.BatchRequest{Numbers: []string{"0926687856", "abc"}}, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestVoucherEndpoint(t *testing.T) {
	app := newTestApp("", 10)

	req := httptest.NewRequest(http.MethodPost, "/api/vouchers/validate", strings.NewReader(facturaXML))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.VoucherResponse](t, resp)
	assert.True(t, out.Valid, out.Errors)
	assert.Equal(t, "001-001-000000123", out.Number)
	assert.Equal(t, "ruc_private", out.IssuerDocumentType)

	req = httptest.NewRequest(http.MethodPost, "/api/vouchers/validate", strings.NewReader("<guiaRemision/>"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_VOUCHER", decode[dto.ErrorResponse](t, resp).Code)
}
