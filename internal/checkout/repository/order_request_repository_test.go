package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain"
	"portfolio/internal/errors"
	"portfolio/internal/testutil"
)

func sampleOrder() *domain.OrderRequest {
	limit := domain.FromMajor(4000)
	added := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	return &domain.OrderRequest{
		ID:        uuid.New(),
		SessionID: "session-1",
		Customer: domain.CheckoutForm{
			Name:  "Priya Sharma",
			Email: "priya@example.com",
			Phone: "+91 98765 43210",
		},
		Items: []domain.CartLineItem{
			{ServiceOffering: domain.ServiceOffering{ID: 1, Title: "Portfolio Website", ListPrice: domain.FromMajor(8000), DiscountCap: &limit}, AddedAt: added},
			{ServiceOffering: domain.ServiceOffering{ID: 6, Title: "Landing Page", ListPrice: domain.FromMajor(5000)}, AddedAt: added},
		},
		Total:        domain.FromMajor(13000),
		PayableTotal: domain.FromMajor(6500),
		Outcome:      domain.OutcomeSimulated,
		Message:      "Message received! We'll get back to you soon.",
		CreatedAt:    added.Add(time.Minute),
	}
}

// Unit Tests

func TestNewMySQLOrderRequestRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRequestRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestItemsEncoding(t *testing.T) {
	order := sampleOrder()

	data, err := encodeItems(order.Items)
	require.NoError(t, err)

	items, err := decodeItems(data)
	require.NoError(t, err)
	assert.Equal(t, order.Items, items)
}

func TestDecodeItems_Invalid(t *testing.T) {
	_, err := decodeItems([]byte("not json"))
	assert.Error(t, err)
}

func TestMemoryRepository_InsertAndFind(t *testing.T) {
	repo := NewMemoryOrderRequestRepository(0)
	order := sampleOrder()

	require.NoError(t, repo.Insert(context.Background(), order))
	assert.Error(t, repo.Insert(context.Background(), order))

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, found)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryOrderRequestRepository(0)

	_, err := repo.FindByID(context.Background(), uuid.New())

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMemoryRepository_EvictsOldestPastLimit(t *testing.T) {
	repo := NewMemoryOrderRequestRepository(2)
	first, second, third := sampleOrder(), sampleOrder(), sampleOrder()
	first.ID, second.ID, third.ID = uuid.New(), uuid.New(), uuid.New()

	for _, o := range []*domain.OrderRequest{first, second, third} {
		require.NoError(t, repo.Insert(context.Background(), o))
	}

	_, err := repo.FindByID(context.Background(), first.ID)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	for _, o := range []*domain.OrderRequest{second, third} {
		found, err := repo.FindByID(context.Background(), o.ID)
		require.NoError(t, err)
		assert.Equal(t, o.ID, found.ID)
	}
}

// Integration Tests

func TestOrderRequestRepository_InsertAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRequestRepository(db)
	order := sampleOrder()

	require.NoError(t, repo.Insert(context.Background(), order))

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, "session-1", found.SessionID)
	assert.Equal(t, order.Customer, found.Customer)
	assert.Equal(t, order.Items, found.Items)
	assert.Equal(t, order.Total, found.Total)
	assert.Equal(t, order.PayableTotal, found.PayableTotal)
	assert.Equal(t, domain.OutcomeSimulated, found.Outcome)
	assert.True(t, order.CreatedAt.Equal(found.CreatedAt))
}

func TestOrderRequestRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRequestRepository(db)

	order, err := repo.FindByID(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, order)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}
