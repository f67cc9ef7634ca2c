package http_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturation-api/internal/application/dto"
	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
	"github.com/jhoicas/Facturation-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/Facturation-api/internal/interfaces/http"
)

// ── stubs ─────────────────────────────────────────────────────────────────────

type invoiceStub struct {
	err        error
	lastFilter repository.InvoiceFilter
	lastID     string
}

func (s *invoiceStub) CreateInvoice(_ context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.InvoiceResponse{ID: "inv-1", CompanyID: companyID, ClientID: in.ClientID, Number: "FAC-2025-001", Status: "draft"}, nil
}

func (s *invoiceStub) GetInvoice(_ context.Context, _, id string) (*dto.InvoiceResponse, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return &dto.InvoiceResponse{ID: id}, nil
}

func (s *invoiceStub) ListInvoices(_ context.Context, _ string, f repository.InvoiceFilter) ([]dto.InvoiceSummary, error) {
	s.lastFilter = f
	return []dto.InvoiceSummary{}, s.err
}

func (s *invoiceStub) UpdateInvoice(context.Context, string, string, dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	return &dto.InvoiceResponse{}, s.err
}

func (s *invoiceStub) UpdateStatus(context.Context, string, string, dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	return &dto.InvoiceResponse{}, s.err
}

func (s *invoiceStub) DeleteInvoice(context.Context, string, string) error { return s.err }

type pdfStub struct{}

func (pdfStub) InvoicePDF(_ context.Context, _, id string) ([]byte, string, error) {
	if id == "missing" {
		return nil, "", domain.ErrNotFound
	}
	return []byte("%PDF-1.4"), "facture-FAC-2025-001.pdf", nil
}

func (pdfStub) QuotePDF(context.Context, string, string) ([]byte, string, error) {
	return []byte("%PDF-1.4"), "devis-DEV-2025-001.pdf", nil
}

type leaveStub struct {
	gotSaturdays bool
}

func (s *leaveStub) CreateLeave(context.Context, string, dto.CreateLeaveRequest) (*dto.LeaveResponse, error) {
	return nil, fmt.Errorf("%w: la fecha de fin es anterior a la fecha de inicio", domain.ErrInvalidInput)
}

func (s *leaveStub) GetLeave(context.Context, string, string) (*dto.LeaveResponse, error) {
	return nil, domain.ErrForbidden
}

func (s *leaveStub) ListLeaves(context.Context, string, repository.LeaveFilter) ([]*dto.LeaveResponse, error) {
	return nil, nil
}

func (s *leaveStub) UpdateLeave(context.Context, string, string, dto.UpdateLeaveRequest) (*dto.LeaveResponse, error) {
	return nil, nil
}

func (s *leaveStub) UpdateStatus(context.Context, string, string, string) (*dto.LeaveResponse, error) {
	return nil, domain.ErrInvalidTransition
}

func (s *leaveStub) Preview(start, end time.Time, includeSaturdays bool) *dto.LeavePreviewResponse {
	s.gotSaturdays = includeSaturdays
	return &dto.LeavePreviewResponse{
		StartDate:   start.Format(dto.DateLayout),
		EndDate:     end.Format(dto.DateLayout),
		WorkingDays: 5,
	}
}

type reportStub struct{ months int }

func (s *reportStub) Summary(_ context.Context, _ string, months int) (*dto.ReportSummaryDTO, error) {
	s.months = months
	return &dto.ReportSummaryDTO{Currency: "MAD"}, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

type testAPI struct {
	app      *fiber.App
	invoices *invoiceStub
	leaves   *leaveStub
	reports  *reportStub
	registry *prometheus.Registry
	token    string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	api := &testAPI{
		app:      fiber.New(),
		invoices: &invoiceStub{},
		leaves:   &leaveStub{},
		reports:  &reportStub{},
		registry: prometheus.NewRegistry(),
		token:    bearer(t, testJWTSecret, testIssuer, time.Hour),
	}
	apphttp.Router(api.app, apphttp.RouterDeps{
		AppName:   "facturation-test",
		InvoiceUC: api.invoices,
		PDFUC:     pdfStub{},
		LeaveUC:   api.leaves,
		ReportUC:  api.reports,
		Metrics:   metrics.New(api.registry),
		Gatherer:  api.registry,
		JWTSecret: testJWTSecret,
		JWTIssuer: testIssuer,
	})
	return api
}

func (a *testAPI) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Authorization", a.token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestRouter_HealthEsPublico(t *testing.T) {
	api := newTestAPI(t)
	resp := doGet(t, api.app, "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouter_APIRequiereToken(t *testing.T) {
	api := newTestAPI(t)
	resp := doGet(t, api.app, "/api/invoices", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestInvoiceHandler_Create(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/invoices", `{"client_id":"cli-1","items":[{"description":"Ciment","quantity":"2","unit_price":"10","vat_rate":"20"}]}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"number":"FAC-2025-001"`)
	assert.Contains(t, string(body), `"company_id":"`+testCompanyID+`"`)
}

func TestInvoiceHandler_CuerpoInvalido(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/invoices", `{"client_id":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestInvoiceHandler_ListPasaFiltros(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/invoices?status=paid&client_id=cli-9&limit=500&offset=-3", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, repository.InvoiceFilter{Status: "paid", ClientID: "cli-9", Limit: 100, Offset: 0}, api.invoices.lastFilter)
}

func TestRespondError_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: quantity negativa", domain.ErrInvalidInput), fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{fmt.Errorf("insert invoice: %w", domain.ErrDuplicate), fiber.StatusConflict, "DUPLICATE"},
		{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{domain.ErrInvalidTransition, fiber.StatusConflict, "CONFLICT"},
		{errors.New("conexión perdida"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			api := newTestAPI(t)
			api.invoices.err = tc.err
			resp := api.do(t, http.MethodGet, "/api/invoices/inv-1", "")
			assert.Equal(t, tc.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tc.code, body.Code)
			if tc.status == fiber.StatusInternalServerError {
				assert.NotContains(t, body.Message, "conexión perdida")
			}
		})
	}
}

func TestInvoiceHandler_PDF(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/invoices/inv-1/pdf", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "facture-FAC-2025-001.pdf")

	resp = api.do(t, http.MethodGet, "/api/invoices/missing/pdf", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLeaveHandler_PreviewNoSeConfundeConID(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/leaves/preview?start=2025-03-03&end=2025-03-09&include_saturdays=true", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, api.leaves.gotSaturdays)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"working_days":5`)
}

func TestLeaveHandler_PreviewFechasInvalidas(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/leaves/preview?start=03/03/2025&end=2025-03-09", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestLeaveHandler_Errores(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/leaves", `{"employee_id":"emp-1","start_date":"2025-03-10","end_date":"2025-03-01","type":"annual"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp).Message, "fecha de fin")

	resp = api.do(t, http.MethodPatch, "/api/leaves/lv-1/status", `{"status":"approved"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/leaves/lv-1", "")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestReportHandler_Months(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/reports/summary?months=12", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 12, api.reports.months)

	resp = api.do(t, http.MethodGet, "/api/reports/summary", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, api.reports.months, "sin parámetro el caso de uso aplica el valor por defecto")
}

func TestRouter_MetricsExponeRutasPatron(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodGet, "/api/invoices/inv-42", "")

	resp := doGet(t, api.app, "/metrics", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `facturation_http_requests_total{method="GET",route="/api/invoices/:id",status="200"} 1`)
	assert.NotContains(t, string(body), "inv-42")
}
