package report_test

import (
	"context"
	"sync"

	"github.com/estoque-app/movimentacoes-api/internal/domain/entity"
	"github.com/estoque-app/movimentacoes-api/internal/domain/repository"
)

// fakeRepo colaborador en memoria. Aplica los mismos filtros que la implementación SQL.
type fakeRepo struct {
	mu sync.Mutex

	transfers []entity.Transfer
	scheduled []entity.ScheduledTransfer
	items     map[int]string
	stocks    map[int]string

	transfersErr error
	scheduledErr error
	namesErr     error

	lastTransferFilter  repository.TransferFilter
	lastScheduledFilter repository.ScheduledTransferFilter
	itemNameCalls       [][]int
	stockNameCalls      [][]int
}

var _ repository.MovementReportRepository = (*fakeRepo)(nil)

func matches(itemID, origin, dest int, f repository.TransferFilter) bool {
	if f.ItemID != nil && *f.ItemID != itemID {
		return false
	}
	if f.StockID != nil && *f.StockID != origin && *f.StockID != dest {
		return false
	}
	return true
}

func (r *fakeRepo) FindTransfers(_ context.Context, f repository.TransferFilter) ([]entity.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastTransferFilter = f
	if r.transfersErr != nil {
		return nil, r.transfersErr
	}
	var out []entity.Transfer
	for _, t := range r.transfers {
		if t.OccurredAt.Before(f.From) || t.OccurredAt.After(f.To) {
			continue
		}
		if matches(t.ItemID, t.OriginStockID, t.DestStockID, f) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindScheduledTransfers(_ context.Context, f repository.ScheduledTransferFilter) ([]entity.ScheduledTransfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastScheduledFilter = f
	if r.scheduledErr != nil {
		return nil, r.scheduledErr
	}
	var out []entity.ScheduledTransfer
	for _, s := range r.scheduled {
		if s.Status != f.Status || s.ScheduledAt.Before(f.From) || s.ScheduledAt.After(f.To) {
			continue
		}
		if matches(s.ItemID, s.OriginStockID, s.DestStockID, f.TransferFilter) {
			out = append(out, s)
		}
	}
	return out, nil
}

func lookup(names map[int]string, ids []int) []entity.NamedRef {
	var out []entity.NamedRef
	for _, id := range ids {
		if n, ok := names[id]; ok {
			out = append(out, entity.NamedRef{ID: id, Name: n})
		}
	}
	return out
}

func (r *fakeRepo) FindItemNames(_ context.Context, ids []int) ([]entity.NamedRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.itemNameCalls = append(r.itemNameCalls, ids)
	if r.namesErr != nil {
		return nil, r.namesErr
	}
	return lookup(r.items, ids), nil
}

func (r *fakeRepo) FindStockNames(_ context.Context, ids []int) ([]entity.NamedRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stockNameCalls = append(r.stockNameCalls, ids)
	if r.namesErr != nil {
		return nil, r.namesErr
	}
	return lookup(r.stocks, ids), nil
}
