package http_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rafaelvm/patrimonio-api/internal/domain"
	"github.com/rafaelvm/patrimonio-api/internal/domain/entity"
	"github.com/rafaelvm/patrimonio-api/internal/domain/repository"
)

// Fakes em memória com a mesma semântica dos repositórios PostgreSQL,
// usados pelos testes de handler (sem banco).

type memUserRepo struct {
	users map[string]*entity.User // por ID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

type memPatrimonyRepo struct {
	items map[string]*entity.Patrimony
}

func newMemPatrimonyRepo() *memPatrimonyRepo {
	return &memPatrimonyRepo{items: map[string]*entity.Patrimony{}}
}

func (r *memPatrimonyRepo) plateTaken(plate, excludeID string) bool {
	for _, p := range r.items {
		if p.Plate == plate && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *memPatrimonyRepo) Create(_ context.Context, p *entity.Patrimony) error {
	if r.plateTaken(p.Plate, p.ID) {
		return domain.ErrDuplicate
	}
	clone := *p
	r.items[p.ID] = &clone
	return nil
}

func (r *memPatrimonyRepo) GetByID(_ context.Context, id string) (*entity.Patrimony, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memPatrimonyRepo) List(_ context.Context, filter repository.PatrimonyFilter) ([]*entity.Patrimony, error) {
	var out []*entity.Patrimony
	for _, p := range r.items {
		if filter.Department != "" && p.Department != filter.Department {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memPatrimonyRepo) Update(_ context.Context, p *entity.Patrimony) (bool, error) {
	if _, ok := r.items[p.ID]; !ok {
		return false, nil
	}
	if r.plateTaken(p.Plate, p.ID) {
		return false, domain.ErrDuplicate
	}
	clone := *p
	r.items[p.ID] = &clone
	return true, nil
}

func (r *memPatrimonyRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *memPatrimonyRepo) UpdateDepartment(_ context.Context, id, department string) error {
	p, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Department = department
	return nil
}

func (r *memPatrimonyRepo) SetAttachment(_ context.Context, id string, field entity.AttachmentField, url string) (bool, error) {
	p, ok := r.items[id]
	if !ok {
		return false, nil
	}
	switch field {
	case entity.AttachmentImage:
		p.ImageURL = &url
	case entity.AttachmentInvoice:
		p.InvoiceFile = &url
	case entity.AttachmentCommitment:
		p.CommitmentFile = &url
	case entity.AttachmentDenfSe:
		p.DenfSeFile = &url
	}
	return true, nil
}

func (r *memPatrimonyRepo) Departments(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range r.items {
		if !seen[p.Department] {
			seen[p.Department] = true
			out = append(out, p.Department)
		}
	}
	sort.Strings(out)
	return out, nil
}

type memTransferRepo struct {
	records     []*entity.Transfer
	patrimonies *memPatrimonyRepo
	users       *memUserRepo
}

func (r *memTransferRepo) Create(_ context.Context, t *entity.Transfer) error {
	clone := *t
	r.records = append(r.records, &clone)
	return nil
}

func (r *memTransferRepo) detail(t *entity.Transfer) *repository.TransferDetail {
	d := &repository.TransferDetail{
		ID:             t.ID,
		PatrimonyID:    t.PatrimonyID,
		FromDepartment: t.FromDepartment,
		ToDepartment:   t.ToDepartment,
		Reason:         t.Reason,
		TransferredBy:  t.TransferredBy,
		TransferredAt:  t.TransferredAt,
	}
	if p, ok := r.patrimonies.items[t.PatrimonyID]; ok {
		d.PatrimonyName = p.Name
	}
	if t.TransferredBy != nil {
		if u, ok := r.users.users[*t.TransferredBy]; ok {
			name := u.Username
			d.TransferredByName = &name
		}
	}
	return d
}

func (r *memTransferRepo) GetByID(_ context.Context, id string) (*repository.TransferDetail, error) {
	for _, t := range r.records {
		if t.ID == id {
			return r.detail(t), nil
		}
	}
	return nil, nil
}

func (r *memTransferRepo) List(_ context.Context, patrimonyID string) ([]*repository.TransferDetail, error) {
	var out []*repository.TransferDetail
	for i := len(r.records) - 1; i >= 0; i-- {
		t := r.records[i]
		if patrimonyID != "" && t.PatrimonyID != patrimonyID {
			continue
		}
		out = append(out, r.detail(t))
	}
	return out, nil
}

// memStatsRepo computa os agregados sobre o repositório de patrimônios.
type memStatsRepo struct {
	patrimonies *memPatrimonyRepo
}

func (r *memStatsRepo) Totals(_ context.Context, department string) (int64, decimal.Decimal, error) {
	var count int64
	total := decimal.Zero
	for _, p := range r.patrimonies.items {
		if department != "" && p.Department != department {
			continue
		}
		count++
		total = total.Add(p.Value)
	}
	return count, total, nil
}

func (r *memStatsRepo) CountByStatus(_ context.Context, department string) (map[string]int64, error) {
	out := map[string]int64{}
	for _, p := range r.patrimonies.items {
		if department != "" && p.Department != department {
			continue
		}
		out[p.Status]++
	}
	return out, nil
}

func (r *memStatsRepo) ByDepartment(_ context.Context) ([]repository.DepartmentStats, error) {
	byDept := map[string]*repository.DepartmentStats{}
	for _, p := range r.patrimonies.items {
		d, ok := byDept[p.Department]
		if !ok {
			d = &repository.DepartmentStats{Department: p.Department, TotalValue: decimal.Zero}
			byDept[p.Department] = d
		}
		d.Count++
		d.TotalValue = d.TotalValue.Add(p.Value)
	}
	out := make([]repository.DepartmentStats, 0, len(byDept))
	for _, d := range byDept {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

// memTxRunner executa o callback direto sobre os fakes (sem transação real).
type memTxRunner struct {
	transfers   *memTransferRepo
	patrimonies *memPatrimonyRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	transfers repository.TransferRepository,
	patrimonies repository.PatrimonyRepository,
) error) error {
	return fn(r.transfers, r.patrimonies)
}
