package catalog

import (
	"portfolio/internal/domain"
	"portfolio/internal/dto"
	"portfolio/internal/pricing"
)

type ListServicesResponse struct {
	Services []ServiceDTO `json:"services"`
}

type ServiceDTO struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Highlight   bool         `json:"highlight"`
	DiscountCap *int64       `json:"discountCap"`
	Price       dto.PriceDTO `json:"price"`
}

type ProfileResponse struct {
	Projects     []ProjectDTO     `json:"projects"`
	Testimonials []TestimonialDTO `json:"testimonials"`
}

type ProjectDTO struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
}

type TestimonialDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

func newServiceDTO(o domain.ServiceOffering, b pricing.Breakdown) ServiceDTO {
	out := ServiceDTO{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Highlight:   o.Highlight,
		Price:       dto.NewPriceDTO(b),
	}
	if o.DiscountCap != nil {
		c := int64(*o.DiscountCap)
		out.DiscountCap = &c
	}
	return out
}
