package request

import (
	"time"

	"issuance-engine/internal/pkg/errs"
	"issuance-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("dates must be formatted as YYYY-MM-DD")

type OfferItem struct {
	Description string          `json:"description" binding:"required,max=500"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

type OfferRequest struct {
	CustomerID       uuid.UUID   `json:"customer_id" binding:"required"`
	Items            []OfferItem `json:"items" binding:"required,min=1,dive"`
	Notes            string      `json:"notes" binding:"max=4000"`
	DocumentTitle    string      `json:"document_title" binding:"max=200"`
	IntroductoryText string      `json:"introductory_text" binding:"max=4000"`
	IssueDate        string      `json:"issue_date" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate       string      `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	SendEmail        bool        `json:"send_email"`
}

func (r *OfferRequest) ToCommand() (commands.OfferInput, error) {
	issue, err := parseDate(r.IssueDate)
	if err != nil {
		return commands.OfferInput{}, err
	}
	expiry, err := parseDate(r.ExpiryDate)
	if err != nil {
		return commands.OfferInput{}, err
	}

	items := make([]commands.OfferItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.OfferItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Discount:    it.Discount,
			TaxRate:     it.TaxRate,
		}
	}

	return commands.OfferInput{
		CustomerID:       r.CustomerID,
		Items:            items,
		Notes:            r.Notes,
		DocumentTitle:    r.DocumentTitle,
		IntroductoryText: r.IntroductoryText,
		IssueDate:        issue,
		ExpiryDate:       expiry,
		SendEmail:        r.SendEmail,
	}, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errs.InvalidArgument(errs.Wrap(ErrInvalidDate, s))
	}
	return &t, nil
}

type UpdateOfferStatusRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	// Status accepts Aceptada, Rechazada, Vencida or their English names.
	Status string `json:"status" binding:"required"`
}
