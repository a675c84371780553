package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/commons"
	"portfolio/internal/domain"
	"portfolio/internal/errors"
)

func int64Ptr(i int64) *int64 {
	return &i
}

func testCatalog() *commons.CatalogFile {
	return &commons.CatalogFile{
		Services: []commons.ServiceEntry{
			{ID: 1, Title: "Portfolio Website", Price: commons.PriceValue{Amount: domain.FromMajor(8000)}, MaxDiscount: int64Ptr(4000)},
			{ID: 4, Title: "Custom Web App (SaaS)", Price: commons.PriceValue{Amount: domain.FromMajor(65000)}, Highlight: true},
		},
		Projects:     []commons.ProjectEntry{{ID: 1, Title: "E-Commerce Dashboard", Tags: []string{"React"}}},
		Testimonials: []commons.TestimonialEntry{{ID: 1, Name: "Rahul Sharma", Rating: 5}},
	}
}

func TestMemoryRepository_FindAll_KeepsFileOrder(t *testing.T) {
	repo := NewMemoryRepository(testCatalog())

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 4, all[1].ID)
}

func TestMemoryRepository_FindByID(t *testing.T) {
	repo := NewMemoryRepository(testCatalog())

	o, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Website", o.Title)
	assert.Equal(t, domain.FromMajor(8000), o.ListPrice)
	require.NotNil(t, o.DiscountCap)
	assert.Equal(t, domain.FromMajor(4000), *o.DiscountCap)

	o, err = repo.FindByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Nil(t, o.DiscountCap)
	assert.True(t, o.Highlight)
}

func TestMemoryRepository_FindByID_NotFound(t *testing.T) {
	repo := NewMemoryRepository(testCatalog())

	o, err := repo.FindByID(context.Background(), 99)
	assert.Nil(t, o)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMemoryRepository_ReturnedOfferingIsACopy(t *testing.T) {
	repo := NewMemoryRepository(testCatalog())

	o, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	o.Title = "changed"

	again, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Website", again.Title)
}

func TestMemoryRepository_Profile(t *testing.T) {
	repo := NewMemoryRepository(testCatalog())

	projects, err := repo.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"React"}, projects[0].Tags)

	testimonials, err := repo.Testimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, "Rahul Sharma", testimonials[0].Name)
}
