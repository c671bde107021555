package queries

import (
	"time"

	"issuance-engine/internal/domain/coupon"

	"github.com/google/uuid"
)

// CouponView represents read-optimized coupon data
type CouponView struct {
	Code            string     `json:"code"`
	PeriodKey       string     `json:"period_key"`
	Status          string     `json:"status"`
	Title           string     `json:"title"`
	Subtitle        string     `json:"subtitle,omitempty"`
	ValueText       string     `json:"value_text"`
	BgImageURL      string     `json:"bg_image_url,omitempty"`
	Terms           string     `json:"terms,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	IssuedBy        uuid.UUID  `json:"issued_by"`
	IssuedAt        time.Time  `json:"issued_at"`
	IsIndividual    bool       `json:"is_individual"`
	RecipientName   string     `json:"recipient_name,omitempty"`
	SenderName      string     `json:"sender_name,omitempty"`
	RedeemedAt      *time.Time `json:"redeemed_at,omitempty"`
	RedeemerName    string     `json:"redeemer_name,omitempty"`
	RedeemerContact string     `json:"redeemer_contact,omitempty"`
	RedeemerChannel string     `json:"redeemer_channel,omitempty"`
	RedeemedByAdmin *uuid.UUID `json:"redeemed_by_admin,omitempty"`
}

func NewCouponView(s coupon.Snapshot) *CouponView {
	return &CouponView{
		Code:            s.Code,
		PeriodKey:       s.PeriodKey,
		Status:          s.Status,
		Title:           s.Title,
		Subtitle:        s.Subtitle,
		ValueText:       s.ValueText,
		BgImageURL:      s.BgImageURL,
		Terms:           s.Terms,
		ExpiresAt:       s.ExpiresAt,
		IssuedBy:        s.IssuedBy,
		IssuedAt:        s.IssuedAt,
		IsIndividual:    s.IsIndividual,
		RecipientName:   s.RecipientName,
		SenderName:      s.SenderName,
		RedeemedAt:      s.RedeemedAt,
		RedeemerName:    s.RedeemerName,
		RedeemerContact: s.RedeemerContact,
		RedeemerChannel: s.RedeemerChannel,
		RedeemedByAdmin: s.RedeemedByAdmin,
	}
}

// QuotaUsage reports how much of a period ceiling has been consumed.
type QuotaUsage struct {
	Period    string `json:"period"`
	Issued    int64  `json:"issued"`
	Ceiling   int64  `json:"ceiling"`
	Remaining int64  `json:"remaining"`
}

type OfferItemView struct {
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

// OfferView carries money as fixed two-decimal strings.
type OfferView struct {
	ID               uuid.UUID       `json:"id"`
	Number           string          `json:"number"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	CustomerName     string          `json:"customer_name,omitempty"`
	Status           string          `json:"status"`
	DocumentTitle    string          `json:"document_title,omitempty"`
	IntroductoryText string          `json:"introductory_text,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	IssueDate        *time.Time      `json:"issue_date,omitempty"`
	ExpiryDate       *time.Time      `json:"expiry_date,omitempty"`
	Subtotal         string          `json:"subtotal"`
	Tax              string          `json:"tax"`
	Total            string          `json:"total"`
	EffectiveTaxRate string          `json:"effective_tax_rate"`
	Items            []OfferItemView `json:"items"`
	CreatedBy        uuid.UUID       `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	SentAt           *time.Time      `json:"sent_at,omitempty"`
	SeenAt           *time.Time      `json:"seen_at,omitempty"`
	ClosedAt         *time.Time      `json:"closed_at,omitempty"`
}
