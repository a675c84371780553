package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"portfolio/internal/domain"
	"portfolio/internal/errors"
)

// MemoryOrderRequestRepository keeps the ledger in process when no
// database is configured. Records are lost on restart, and once limit
// records are held the oldest is evicted on each insert. A limit of 0
// keeps everything.
type MemoryOrderRequestRepository struct {
	mu     sync.RWMutex
	limit  int
	orders map[uuid.UUID]domain.OrderRequest
	order  []uuid.UUID
}

func NewMemoryOrderRequestRepository(limit int) *MemoryOrderRequestRepository {
	return &MemoryOrderRequestRepository{
		limit:  limit,
		orders: make(map[uuid.UUID]domain.OrderRequest),
	}
}

func (r *MemoryOrderRequestRepository) Insert(ctx context.Context, order *domain.OrderRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return fmt.Errorf("inserting order request: duplicate id %s", order.ID)
	}

	if r.limit > 0 && len(r.order) >= r.limit {
		delete(r.orders, r.order[0])
		r.order = r.order[1:]
	}

	stored := *order
	stored.Items = append([]domain.CartLineItem(nil), order.Items...)
	r.orders[order.ID] = stored
	r.order = append(r.order, order.ID)
	return nil
}

func (r *MemoryOrderRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.OrderRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order request with id %s not found", id))
	}
	return &order, nil
}
