package dto

import "time"

type PriceDTO struct {
	Original        int64  `json:"original"`
	Discount        int64  `json:"discount"`
	Final           int64  `json:"final"`
	Percentage      int64  `json:"percentage"`
	OriginalDisplay string `json:"originalDisplay"`
	FinalDisplay    string `json:"finalDisplay"`
}

type LineItemDTO struct {
	Index     int       `json:"index"`
	ServiceID int       `json:"serviceId"`
	Title     string    `json:"title"`
	Price     PriceDTO  `json:"price"`
	AddedAt   time.Time `json:"addedAt"`
}

type CartResponse struct {
	Items               []LineItemDTO `json:"items"`
	ItemCount           int           `json:"itemCount"`
	Total               int64         `json:"total"`
	TotalDisplay        string        `json:"totalDisplay"`
	PayableTotal        int64         `json:"payableTotal"`
	PayableTotalDisplay string        `json:"payableTotalDisplay"`
}

type AddItemRequest struct {
	ServiceID int `json:"serviceId"`
}

type AddItemResponse struct {
	Item     LineItemDTO       `json:"item"`
	Cart     CartResponse      `json:"cart"`
	Checkout *CheckoutResponse `json:"checkout"`
}
