package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/domain"
	"portfolio/internal/errors"
)

type MySQLOrderRequestRepository struct {
	db *sql.DB
}

func NewMySQLOrderRequestRepository(db *sql.DB) *MySQLOrderRequestRepository {
	return &MySQLOrderRequestRepository{db: db}
}

// lineItemRecord is the JSON shape of one cart line in the items column.
type lineItemRecord struct {
	ServiceID   int       `json:"serviceId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ListPrice   int64     `json:"listPrice"`
	DiscountCap *int64    `json:"discountCap,omitempty"`
	AddedAt     time.Time `json:"addedAt"`
}

func (r *MySQLOrderRequestRepository) Insert(ctx context.Context, order *domain.OrderRequest) error {
	items, err := encodeItems(order.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO OrderRequests (
			id, sessionId, customerName, customerEmail, customerPhone, requirements,
			items, total, payableTotal, outcome, message, createdAt
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		order.ID.String(), order.SessionID, order.Customer.Name, order.Customer.Email,
		order.Customer.Phone, order.Customer.Requirements, items,
		int64(order.Total), int64(order.PayableTotal), string(order.Outcome), order.Message,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order request: %w", err)
	}

	return nil
}

func (r *MySQLOrderRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.OrderRequest, error) {
	query := `
		SELECT id, sessionId, customerName, customerEmail, customerPhone, requirements,
		       items, total, payableTotal, outcome, message, createdAt
		FROM OrderRequests
		WHERE id = ?
	`

	var (
		order        domain.OrderRequest
		rawID        string
		requirements sql.NullString
		rawItems     []byte
		total        int64
		payable      int64
		outcome      string
	)
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&rawID, &order.SessionID, &order.Customer.Name, &order.Customer.Email,
		&order.Customer.Phone, &requirements, &rawItems, &total, &payable,
		&outcome, &order.Message, &order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order request with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order request by id: %w", err)
	}

	order.ID, err = uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parsing order request id: %w", err)
	}
	order.Items, err = decodeItems(rawItems)
	if err != nil {
		return nil, err
	}
	order.Customer.Requirements = requirements.String
	order.Total = domain.Money(total)
	order.PayableTotal = domain.Money(payable)
	order.Outcome = domain.DispatchOutcome(outcome)

	return &order, nil
}

func encodeItems(items []domain.CartLineItem) ([]byte, error) {
	records := make([]lineItemRecord, 0, len(items))
	for _, item := range items {
		rec := lineItemRecord{
			ServiceID:   item.ID,
			Title:       item.Title,
			Description: item.Description,
			ListPrice:   int64(item.ListPrice),
			AddedAt:     item.AddedAt,
		}
		if item.DiscountCap != nil {
			c := int64(*item.DiscountCap)
			rec.DiscountCap = &c
		}
		records = append(records, rec)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding order items: %w", err)
	}
	return data, nil
}

func decodeItems(data []byte) ([]domain.CartLineItem, error) {
	var records []lineItemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding order items: %w", err)
	}

	items := make([]domain.CartLineItem, 0, len(records))
	for _, rec := range records {
		item := domain.CartLineItem{
			ServiceOffering: domain.ServiceOffering{
				ID:          rec.ServiceID,
				Title:       rec.Title,
				Description: rec.Description,
				ListPrice:   domain.Money(rec.ListPrice),
			},
			AddedAt: rec.AddedAt,
		}
		if rec.DiscountCap != nil {
			c := domain.Money(*rec.DiscountCap)
			item.DiscountCap = &c
		}
		items = append(items, item)
	}
	return items, nil
}
