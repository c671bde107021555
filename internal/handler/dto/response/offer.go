package response

import (
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/internal/usecase/queries"
)

type OfferResultResponse struct {
	OfferID     string `json:"offer_id"`
	OfferNumber string `json:"offer_number"`
	Status      string `json:"status"`
}

func FromOfferResult(r *commands.OfferResult) *OfferResultResponse {
	return &OfferResultResponse{
		OfferID:     r.OfferID.String(),
		OfferNumber: r.OfferNumber,
		Status:      r.Status,
	}
}

type OfferItemResponse struct {
	Position    int    `json:"position"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	Discount    string `json:"discount"`
	TaxRate     string `json:"tax_rate"`
	Subtotal    string `json:"subtotal"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

type OfferResponse struct {
	ID               string              `json:"id"`
	Number           string              `json:"number"`
	CustomerID       string              `json:"customer_id"`
	CustomerName     string              `json:"customer_name,omitempty"`
	Status           string              `json:"status"`
	DocumentTitle    string              `json:"document_title,omitempty"`
	IntroductoryText string              `json:"introductory_text,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	IssueDate        string              `json:"issue_date,omitempty"`
	ExpiryDate       string              `json:"expiry_date,omitempty"`
	Subtotal         string              `json:"subtotal"`
	Tax              string              `json:"tax"`
	Total            string              `json:"total"`
	EffectiveTaxRate string              `json:"effective_tax_rate"`
	Items            []OfferItemResponse `json:"items"`
	CreatedAt        int64               `json:"created_at"`
	UpdatedAt        int64               `json:"updated_at"`
	SentAt           *int64              `json:"sent_at,omitempty"`
	SeenAt           *int64              `json:"seen_at,omitempty"`
	ClosedAt         *int64              `json:"closed_at,omitempty"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	res := &OfferResponse{
		ID:               v.ID.String(),
		Number:           v.Number,
		CustomerID:       v.CustomerID.String(),
		CustomerName:     v.CustomerName,
		Status:           v.Status,
		DocumentTitle:    v.DocumentTitle,
		IntroductoryText: v.IntroductoryText,
		Notes:            v.Notes,
		Subtotal:         v.Subtotal,
		Tax:              v.Tax,
		Total:            v.Total,
		EffectiveTaxRate: v.EffectiveTaxRate,
		Items:            make([]OfferItemResponse, len(v.Items)),
		CreatedAt:        v.CreatedAt.Unix(),
		UpdatedAt:        v.UpdatedAt.Unix(),
	}
	if v.IssueDate != nil {
		res.IssueDate = v.IssueDate.Format("2006-01-02")
	}
	if v.ExpiryDate != nil {
		res.ExpiryDate = v.ExpiryDate.Format("2006-01-02")
	}
	for i, it := range v.Items {
		res.Items[i] = OfferItemResponse(it)
	}
	if v.SentAt != nil {
		ts := v.SentAt.Unix()
		res.SentAt = &ts
	}
	if v.SeenAt != nil {
		ts := v.SeenAt.Unix()
		res.SeenAt = &ts
	}
	if v.ClosedAt != nil {
		ts := v.ClosedAt.Unix()
		res.ClosedAt = &ts
	}
	return res
}
