package commons

import (
	"fmt"
	"os"
	"strconv"

	"go.yaml.in/yaml/v3"

	"portfolio/internal/domain"
	"portfolio/internal/pricing"
)

// CatalogFile is the on-disk shape of the static site content.
type CatalogFile struct {
	Currency     string             `yaml:"currency"`
	Services     []ServiceEntry     `yaml:"services"`
	Projects     []ProjectEntry     `yaml:"projects"`
	Testimonials []TestimonialEntry `yaml:"testimonials"`
}

type ServiceEntry struct {
	ID          int        `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Price       PriceValue `yaml:"price"`
	MaxDiscount *int64     `yaml:"maxDiscount"`
	Highlight   bool       `yaml:"highlight"`
}

type ProjectEntry struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link"`
}

type TestimonialEntry struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Text   string `yaml:"text"`
	Rating int    `yaml:"rating"`
}

// PriceValue accepts either a plain number or a display string like
// "₹8,000", both in major units.
type PriceValue struct {
	Amount domain.Money
}

func (p *PriceValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a scalar", node.Line)
	}

	if node.Tag == "!!int" {
		major, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		amount, err := domain.ParseMajor(major)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		p.Amount = amount
		return nil
	}

	amount, err := pricing.ParsePrice(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	p.Amount = amount
	return nil
}

func LoadCatalog(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*CatalogFile, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	if err := validateCatalog(&file); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &file, nil
}

func validateCatalog(file *CatalogFile) error {
	if len(file.Services) == 0 {
		return fmt.Errorf("at least one service is required")
	}

	seen := make(map[int]struct{}, len(file.Services))
	for i, s := range file.Services {
		if s.ID <= 0 {
			return fmt.Errorf("services[%d]: id must be a positive integer", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("services[%d]: duplicate id %d", i, s.ID)
		}
		seen[s.ID] = struct{}{}

		if s.Title == "" {
			return fmt.Errorf("services[%d]: title is required", i)
		}
		if s.Price.Amount < 0 {
			return fmt.Errorf("services[%d]: price must be non-negative", i)
		}
		if s.MaxDiscount != nil && *s.MaxDiscount < 0 {
			return fmt.Errorf("services[%d]: maxDiscount must be non-negative", i)
		}
		if s.MaxDiscount != nil && *s.MaxDiscount > domain.MaxMajor {
			return fmt.Errorf("services[%d]: maxDiscount is out of range", i)
		}
	}

	return nil
}
