package queries

import (
	"issuance-engine/internal/domain/offer"
)

const moneyPlaces = 2

// NewOfferView renders a persisted offer. The effective tax rate is derived
// here from the stored document totals.
func NewOfferView(s offer.Snapshot, customerName string) *OfferView {
	items := make([]OfferItemView, len(s.Items))
	for i, it := range s.Items {
		items[i] = OfferItemView{
			Position:    it.Position,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			Price:       it.Price.StringFixed(moneyPlaces),
			Discount:    it.Discount.String(),
			TaxRate:     it.TaxRate.String(),
			Subtotal:    it.Subtotal.StringFixed(moneyPlaces),
			Tax:         it.Tax.StringFixed(moneyPlaces),
			Total:       it.Total.StringFixed(moneyPlaces),
		}
	}
	totals := offer.Totals{Subtotal: s.Subtotal, Tax: s.Tax, Total: s.Total}
	return &OfferView{
		ID:               s.ID,
		Number:           s.Number,
		CustomerID:       s.CustomerID,
		CustomerName:     customerName,
		Status:           s.Status,
		DocumentTitle:    s.DocumentTitle,
		IntroductoryText: s.IntroductoryText,
		Notes:            s.Notes,
		IssueDate:        s.IssueDate,
		ExpiryDate:       s.ExpiryDate,
		Subtotal:         s.Subtotal.StringFixed(moneyPlaces),
		Tax:              s.Tax.StringFixed(moneyPlaces),
		Total:            s.Total.StringFixed(moneyPlaces),
		EffectiveTaxRate: totals.EffectiveTaxRate().StringFixed(moneyPlaces),
		Items:            items,
		CreatedBy:        s.CreatedBy,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		SentAt:           s.SentAt,
		SeenAt:           s.SeenAt,
		ClosedAt:         s.ClosedAt,
	}
}
