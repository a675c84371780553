package repository

import (
	"context"
	"fmt"

	"portfolio/internal/commons"
	"portfolio/internal/domain"
	"portfolio/internal/errors"
)

// MemoryRepository serves the static catalog loaded at start. Contents are
// never mutated after construction.
type MemoryRepository struct {
	offerings    []domain.ServiceOffering
	byID         map[int]int
	projects     []domain.Project
	testimonials []domain.Testimonial
}

func NewMemoryRepository(file *commons.CatalogFile) *MemoryRepository {
	repo := &MemoryRepository{
		offerings: make([]domain.ServiceOffering, 0, len(file.Services)),
		byID:      make(map[int]int, len(file.Services)),
	}

	for _, s := range file.Services {
		o := domain.ServiceOffering{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			ListPrice:   s.Price.Amount,
			Highlight:   s.Highlight,
		}
		if s.MaxDiscount != nil {
			c := domain.FromMajor(*s.MaxDiscount)
			o.DiscountCap = &c
		}
		repo.byID[o.ID] = len(repo.offerings)
		repo.offerings = append(repo.offerings, o)
	}

	for _, p := range file.Projects {
		repo.projects = append(repo.projects, domain.Project{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Tags:        append([]string(nil), p.Tags...),
			Link:        p.Link,
		})
	}

	for _, t := range file.Testimonials {
		repo.testimonials = append(repo.testimonials, domain.Testimonial{
			ID:     t.ID,
			Name:   t.Name,
			Role:   t.Role,
			Text:   t.Text,
			Rating: t.Rating,
		})
	}

	return repo
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]domain.ServiceOffering, error) {
	out := make([]domain.ServiceOffering, len(r.offerings))
	copy(out, r.offerings)
	return out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id int) (*domain.ServiceOffering, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("service offering with id %d not found", id))
	}
	o := r.offerings[idx]
	return &o, nil
}

func (r *MemoryRepository) Projects(ctx context.Context) ([]domain.Project, error) {
	return r.projects, nil
}

func (r *MemoryRepository) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return r.testimonials, nil
}
