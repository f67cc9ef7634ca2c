package billing_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/Facturation-api/internal/application/billing"
	"github.com/jhoicas/Facturation-api/internal/domain"
	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

// memStore almacenamiento en memoria compartido por los repos falsos.
// RunDocuments toma una copia y la restaura si fn falla (rollback).
type memStore struct {
	mu        sync.Mutex
	companies map[string]entity.Company
	clients   map[string]entity.Client
	invoices  map[string]entity.Invoice
	quotes    map[string]entity.Quote

	failInvoiceCreate error
	failQuoteStatus   error
	txCount           int

	// beforeTx corre al abrir la transacción: simula otra petición que escribió antes.
	beforeTx func(s *memStore)
	// staleLocks hace que GetForUpdate no vea la empresa esas veces (fila aún sin commit).
	staleLocks int
}

func newMemStore() *memStore {
	return &memStore{
		companies: map[string]entity.Company{},
		clients:   map[string]entity.Client{},
		invoices:  map[string]entity.Invoice{},
		quotes:    map[string]entity.Quote{},
	}
}

type snapshot struct {
	companies map[string]entity.Company
	invoices  map[string]entity.Invoice
	quotes    map[string]entity.Quote
}

func (s *memStore) snapshot() snapshot {
	snap := snapshot{
		companies: make(map[string]entity.Company, len(s.companies)),
		invoices:  make(map[string]entity.Invoice, len(s.invoices)),
		quotes:    make(map[string]entity.Quote, len(s.quotes)),
	}
	for k, v := range s.companies {
		snap.companies[k] = v
	}
	for k, v := range s.invoices {
		snap.invoices[k] = v
	}
	for k, v := range s.quotes {
		snap.quotes[k] = v
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.companies, s.invoices, s.quotes = snap.companies, snap.invoices, snap.quotes
}

// ── tx runner ────────────────────────────────────────────────────────────────

type fakeTx struct{ s *memStore }

var _ billing.DocumentTxRunner = fakeTx{}

func (t fakeTx) RunDocuments(ctx context.Context, fn func(
	repository.CompanyRepository, repository.InvoiceRepository, repository.QuoteRepository,
) error) error {
	t.s.txCount++
	if t.s.beforeTx != nil {
		t.s.beforeTx(t.s)
	}
	snap := t.s.snapshot()
	if err := fn(companyRepo{t.s}, invoiceRepo{t.s}, quoteRepo{t.s}); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// ── companies ────────────────────────────────────────────────────────────────

type companyRepo struct{ s *memStore }

// Create no pisa una empresa existente (ON CONFLICT DO NOTHING).
func (r companyRepo) Create(_ context.Context, c *entity.Company) error {
	if _, ok := r.s.companies[c.ID]; ok {
		return nil
	}
	r.s.companies[c.ID] = *c
	return nil
}

func (r companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r companyRepo) GetForUpdate(ctx context.Context, id string) (*entity.Company, error) {
	if r.s.staleLocks > 0 {
		r.s.staleLocks--
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r companyRepo) UpdateNumbering(_ context.Context, id string, st entity.NumberingState) error {
	c, ok := r.s.companies[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Numbering = st
	r.s.companies[id] = c
	return nil
}

func (r companyRepo) Update(_ context.Context, c *entity.Company) error {
	cur, ok := r.s.companies[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	n := *c
	n.Numbering = cur.Numbering
	r.s.companies[c.ID] = n
	return nil
}

// ── clients ──────────────────────────────────────────────────────────────────

type clientRepo struct{ s *memStore }

func (r clientRepo) Create(_ context.Context, c *entity.Client) error {
	r.s.clients[c.ID] = *c
	return nil
}

func (r clientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r clientRepo) ListByCompany(_ context.Context, companyID, _ string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.s.clients {
		if c.CompanyID == companyID {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r clientRepo) Update(_ context.Context, c *entity.Client) error {
	r.s.clients[c.ID] = *c
	return nil
}

func (r clientRepo) Delete(_ context.Context, id string) error {
	for _, inv := range r.s.invoices {
		if inv.ClientID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.clients, id)
	return nil
}

// ── invoices ─────────────────────────────────────────────────────────────────

type invoiceRepo struct{ s *memStore }

func (r invoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if r.s.failInvoiceCreate != nil {
		return r.s.failInvoiceCreate
	}
	for _, other := range r.s.invoices {
		if other.CompanyID == inv.CompanyID && other.Number == inv.Number {
			return domain.ErrDuplicate
		}
	}
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r invoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r invoiceRepo) List(_ context.Context, companyID string, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.CompanyID != companyID || (f.Status != "" && inv.Status != f.Status) || (f.ClientID != "" && inv.ClientID != f.ClientID) {
			continue
		}
		inv := inv
		out = append(out, &inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return page(out, f.Limit, f.Offset), nil
}

func (r invoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	if _, ok := r.s.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r invoiceRepo) UpdateStatus(ctx context.Context, inv *entity.Invoice) error {
	return r.Update(ctx, inv)
}

func (r invoiceRepo) Delete(_ context.Context, id string) error {
	delete(r.s.invoices, id)
	return nil
}

// ── quotes ───────────────────────────────────────────────────────────────────

type quoteRepo struct{ s *memStore }

func (r quoteRepo) Create(_ context.Context, q *entity.Quote) error {
	r.s.quotes[q.ID] = *q
	return nil
}

func (r quoteRepo) GetByID(_ context.Context, id string) (*entity.Quote, error) {
	q, ok := r.s.quotes[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r quoteRepo) List(_ context.Context, companyID string, f repository.QuoteFilter) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.s.quotes {
		if q.CompanyID == companyID && (f.Status == "" || q.Status == f.Status) {
			q := q
			out = append(out, &q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return page(out, f.Limit, f.Offset), nil
}

func (r quoteRepo) Update(_ context.Context, q *entity.Quote) error {
	r.s.quotes[q.ID] = *q
	return nil
}

func (r quoteRepo) UpdateStatus(_ context.Context, id, status string) error {
	if r.s.failQuoteStatus != nil {
		return r.s.failQuoteStatus
	}
	q, ok := r.s.quotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.Status = status
	r.s.quotes[id] = q
	return nil
}

func (r quoteRepo) MarkConverted(_ context.Context, id string) error {
	if r.s.failQuoteStatus != nil {
		return r.s.failQuoteStatus
	}
	q, ok := r.s.quotes[id]
	if !ok || (q.Status != entity.QuoteStatusDraft && q.Status != entity.QuoteStatusSent) {
		return domain.ErrConflict
	}
	q.Status = entity.QuoteStatusAccepted
	r.s.quotes[id] = q
	return nil
}

func (r quoteRepo) Delete(_ context.Context, id string) error {
	delete(r.s.quotes, id)
	return nil
}

// ── metrics ──────────────────────────────────────────────────────────────────

type fakeMetrics struct {
	issued map[entity.DocumentKind]int
	failed map[entity.DocumentKind]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{issued: map[entity.DocumentKind]int{}, failed: map[entity.DocumentKind]int{}}
}

func (m *fakeMetrics) DocumentIssued(k entity.DocumentKind)  { m.issued[k]++ }
func (m *fakeMetrics) NumberingFailed(k entity.DocumentKind) { m.failed[k]++ }

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

var errDB = errors.New("conexión perdida")
