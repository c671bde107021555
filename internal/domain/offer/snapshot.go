package offer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemSnapshot struct {
	Position    int
	Description string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Discount    decimal.Decimal
	TaxRate     decimal.Decimal
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// Snapshot is the flat persisted form of an offer, totals already rounded.
type Snapshot struct {
	ID               uuid.UUID
	Number           string
	CustomerID       uuid.UUID
	Status           string
	DocumentTitle    string
	IntroductoryText string
	Notes            string
	IssueDate        *time.Time
	ExpiryDate       *time.Time
	Subtotal         decimal.Decimal
	Tax              decimal.Decimal
	Total            decimal.Decimal
	Items            []ItemSnapshot
	CreatedBy        uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
	SentAt           *time.Time
	SeenAt           *time.Time
	ClosedAt         *time.Time
}

func (o *Offer) Snapshot() Snapshot {
	items := make([]ItemSnapshot, len(o.content.Items))
	for i, it := range o.content.Items {
		items[i] = ItemSnapshot{
			Position:    i + 1,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Discount:    it.Discount,
			TaxRate:     it.TaxRate,
			Subtotal:    it.Subtotal(),
			Tax:         it.Tax(),
			Total:       it.Total(),
		}
	}
	return Snapshot{
		ID:               o.id,
		Number:           o.number.String(),
		CustomerID:       o.customerID,
		Status:           o.status.String(),
		DocumentTitle:    o.content.DocumentTitle,
		IntroductoryText: o.content.IntroductoryText,
		Notes:            o.content.Notes,
		IssueDate:        o.content.IssueDate,
		ExpiryDate:       o.content.ExpiryDate,
		Subtotal:         o.totals.Subtotal,
		Tax:              o.totals.Tax,
		Total:            o.totals.Total,
		Items:            items,
		CreatedBy:        o.createdBy,
		CreatedAt:        o.createdAt,
		UpdatedAt:        o.updatedAt,
		SentAt:           o.sentAt,
		SeenAt:           o.seenAt,
		ClosedAt:         o.closedAt,
	}
}

// FromSnapshot rebuilds an offer. Totals are recomputed from the items so
// the aggregate never trusts stale denormalized columns.
func FromSnapshot(s Snapshot) (*Offer, error) {
	status, err := NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	items := make([]LineItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Discount:    it.Discount,
			TaxRate:     it.TaxRate,
		}
	}
	content := Content{
		Items:            items,
		Notes:            s.Notes,
		DocumentTitle:    s.DocumentTitle,
		IntroductoryText: s.IntroductoryText,
		IssueDate:        s.IssueDate,
		ExpiryDate:       s.ExpiryDate,
	}
	return &Offer{
		id:         s.ID,
		number:     Number(s.Number),
		customerID: s.CustomerID,
		status:     status,
		content:    content,
		totals:     ComputeTotals(items),
		createdBy:  s.CreatedBy,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
		sentAt:     s.SentAt,
		seenAt:     s.SeenAt,
		closedAt:   s.ClosedAt,
	}, nil
}
