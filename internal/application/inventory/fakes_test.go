package inventory_test

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Facturation-api/internal/domain/entity"
	"github.com/jhoicas/Facturation-api/internal/domain/repository"
)

type productRepo struct {
	rows map[string]entity.Product
	err  error
}

var _ repository.ProductRepository = (*productRepo)(nil)

func newProductRepo(list ...entity.Product) *productRepo {
	r := &productRepo{rows: map[string]entity.Product{}}
	for _, p := range list {
		r.rows[p.ID] = p
	}
	return r
}

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	r.rows[p.ID] = *p
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepo) ListByCompany(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.Product, error) {
	all, _ := r.ListAllByCompany(ctx, companyID)
	var out []*entity.Product
	for _, p := range all {
		if search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			out = append(out, p)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *productRepo) ListAllByCompany(_ context.Context, companyID string) ([]*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Product
	for _, p := range r.rows {
		if p.CompanyID == companyID {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	r.rows[p.ID] = *p
	return nil
}

func (r *productRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

type stockRepo struct {
	sold []repository.SoldQuantity
	err  error
}

func (r stockRepo) SoldQuantities(context.Context, string) ([]repository.SoldQuantity, error) {
	return r.sold, r.err
}
