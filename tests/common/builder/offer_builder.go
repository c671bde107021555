//go:build unit || e2e

package builder

import (
	"time"

	reqdto "issuance-engine/internal/handler/dto/request"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ID            uuid.UUID
	Number        string
	CustomerID    uuid.UUID
	CustomerName  string
	Status        string
	DocumentTitle string
	Notes         string
	IssueDate     string
	ExpiryDate    string
	Items         []reqdto.OfferItem
	SendEmail     bool
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:            uuid.New(),
		Number:        "OFFERTA-2025-0001",
		CustomerID:    uuid.New(),
		CustomerName:  "Acme SAS",
		Status:        "draft",
		DocumentTitle: "Propuesta comercial",
		Notes:         "Precios en COP",
		IssueDate:     "2025-05-10",
		ExpiryDate:    "2025-06-10",
		Items: []reqdto.OfferItem{
			{
				Description: "Licencia anual",
				Quantity:    decimal.NewFromInt(2),
				Price:       decimal.RequireFromString("150.00"),
				Discount:    decimal.Zero,
				TaxRate:     decimal.RequireFromString("19"),
			},
		},
		CreatedBy: uuid.New(),
		CreatedAt: time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) BuildRequestDTO() reqdto.OfferRequest {
	return reqdto.OfferRequest{
		CustomerID:    b.CustomerID,
		Items:         b.Items,
		Notes:         b.Notes,
		DocumentTitle: b.DocumentTitle,
		IssueDate:     b.IssueDate,
		ExpiryDate:    b.ExpiryDate,
		SendEmail:     b.SendEmail,
	}
}

func (b *OfferBuilder) BuildResult() *commands.OfferResult {
	return &commands.OfferResult{
		OfferID:     b.ID,
		OfferNumber: b.Number,
		Status:      b.Status,
	}
}

// BuildView reports money for the default single item at 19% tax.
func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:               b.ID,
		Number:           b.Number,
		CustomerID:       b.CustomerID,
		CustomerName:     b.CustomerName,
		Status:           b.Status,
		DocumentTitle:    b.DocumentTitle,
		Notes:            b.Notes,
		Subtotal:         "300.00",
		Tax:              "57.00",
		Total:            "357.00",
		EffectiveTaxRate: "19.00",
		Items: []queries.OfferItemView{
			{
				Position:    1,
				Description: "Licencia anual",
				Quantity:    "2",
				Price:       "150.00",
				Discount:    "0",
				TaxRate:     "19",
				Subtotal:    "300.00",
				Tax:         "57.00",
				Total:       "357.00",
			},
		},
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *OfferBuilder) BuildInfraView() sqlc.GetOfferViewRow {
	return sqlc.GetOfferViewRow{
		ID:            b.ID,
		Number:        b.Number,
		CustomerID:    b.CustomerID,
		Status:        b.Status,
		DocumentTitle: pgtype.Text{String: b.DocumentTitle, Valid: b.DocumentTitle != ""},
		Notes:         pgtype.Text{String: b.Notes, Valid: b.Notes != ""},
		Subtotal:      numeric("300.00"),
		Tax:           numeric("57.00"),
		Total:         numeric("357.00"),
		CreatedBy:     b.CreatedBy,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		CustomerName:  b.CustomerName,
	}
}

func (b *OfferBuilder) BuildInfraItems() []sqlc.OfferItems {
	return []sqlc.OfferItems{
		{
			OfferID:     b.ID,
			Position:    1,
			Description: "Licencia anual",
			Quantity:    numeric("2"),
			Price:       numeric("150.00"),
			Discount:    numeric("0"),
			TaxRate:     numeric("19"),
			Subtotal:    numeric("300.00"),
			Tax:         numeric("57.00"),
			Total:       numeric("357.00"),
		},
	}
}

func numeric(s string) pgtype.Numeric {
	d := decimal.RequireFromString(s)
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}
