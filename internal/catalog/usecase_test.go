package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/pricing"
)

type mockService struct {
	ListOfferingsFunc func(ctx context.Context) ([]domain.ServiceOffering, error)
	GetOfferingFunc   func(ctx context.Context, id int) (*domain.ServiceOffering, error)
	GetProfileFunc    func(ctx context.Context) ([]domain.Project, []domain.Testimonial, error)
}

func (m *mockService) ListOfferings(ctx context.Context) ([]domain.ServiceOffering, error) {
	return m.ListOfferingsFunc(ctx)
}

func (m *mockService) GetOffering(ctx context.Context, id int) (*domain.ServiceOffering, error) {
	return m.GetOfferingFunc(ctx, id)
}

func (m *mockService) GetProfile(ctx context.Context) ([]domain.Project, []domain.Testimonial, error) {
	return m.GetProfileFunc(ctx)
}

func moneyPtr(m domain.Money) *domain.Money {
	return &m
}

func portfolioWebsite() domain.ServiceOffering {
	return domain.ServiceOffering{
		ID:          1,
		Title:       "Portfolio Website",
		ListPrice:   domain.FromMajor(8000),
		DiscountCap: moneyPtr(domain.FromMajor(4000)),
	}
}

func TestListServices_IncludesPricing(t *testing.T) {
	svc := &mockService{
		ListOfferingsFunc: func(ctx context.Context) ([]domain.ServiceOffering, error) {
			return []domain.ServiceOffering{portfolioWebsite()}, nil
		},
	}
	uc := NewUseCase(svc, pricing.NewCalculator(pricing.DefaultDiscountCap))

	resp, err := uc.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 1)

	s := resp.Services[0]
	assert.Equal(t, "Portfolio Website", s.Title)
	assert.Equal(t, int64(800000), s.Price.Original)
	assert.Equal(t, int64(400000), s.Price.Final)
	assert.Equal(t, int64(50), s.Price.Percentage)
	assert.Equal(t, "₹8,000", s.Price.OriginalDisplay)
	assert.Equal(t, "₹4,000", s.Price.FinalDisplay)
	require.NotNil(t, s.DiscountCap)
	assert.Equal(t, int64(400000), *s.DiscountCap)
}

func TestListServices_ServiceError(t *testing.T) {
	svc := &mockService{
		ListOfferingsFunc: func(ctx context.Context) ([]domain.ServiceOffering, error) {
			return nil, errors.New("boom")
		},
	}
	uc := NewUseCase(svc, pricing.NewCalculator(pricing.DefaultDiscountCap))

	_, err := uc.ListServices(context.Background())
	assert.Error(t, err)
}

func TestGetService_NotFound(t *testing.T) {
	svc := &mockService{
		GetOfferingFunc: func(ctx context.Context, id int) (*domain.ServiceOffering, error) {
			return nil, apperrors.NewNotFoundError("service offering with id 9 not found")
		},
	}
	uc := NewUseCase(svc, pricing.NewCalculator(pricing.DefaultDiscountCap))

	_, err := uc.GetService(context.Background(), 9)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestGetProfile_EmptyTagsBecomeEmptySlice(t *testing.T) {
	svc := &mockService{
		GetProfileFunc: func(ctx context.Context) ([]domain.Project, []domain.Testimonial, error) {
			return []domain.Project{{ID: 1, Title: "Portfolio v1"}}, []domain.Testimonial{{ID: 1, Name: "Zara Ali", Rating: 5}}, nil
		},
	}
	uc := NewUseCase(svc, pricing.NewCalculator(pricing.DefaultDiscountCap))

	resp, err := uc.GetProfile(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Projects, 1)
	assert.NotNil(t, resp.Projects[0].Tags)
	require.Len(t, resp.Testimonials, 1)
	assert.Equal(t, "Zara Ali", resp.Testimonials[0].Name)
}
