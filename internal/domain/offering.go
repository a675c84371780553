package domain

// ServiceOffering is a purchasable package from the static catalog.
type ServiceOffering struct {
	ID          int
	Title       string
	Description string
	ListPrice   Money
	DiscountCap *Money
	Highlight   bool
}

type Project struct {
	ID          int
	Title       string
	Description string
	Tags        []string
	Link        string
}

type Testimonial struct {
	ID     int
	Name   string
	Role   string
	Text   string
	Rating int
}
