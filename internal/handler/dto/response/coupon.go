package response

import (
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/internal/usecase/queries"
)

type CouponBatchResponse struct {
	Period       string `json:"period"`
	CreatedCount int64  `json:"created_count"`
	FirstCode    string `json:"first_code"`
	LastCode     string `json:"last_code"`
}

func FromBatchResult(r *commands.IssueBatchResult) *CouponBatchResponse {
	return &CouponBatchResponse{
		Period:       r.Period,
		CreatedCount: r.CreatedCount,
		FirstCode:    r.FirstCode,
		LastCode:     r.LastCode,
	}
}

type CouponResponse struct {
	Code         string `json:"code"`
	Period       string `json:"period"`
	Status       string `json:"status"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	ValueText    string `json:"value_text"`
	BgImageURL   string `json:"bg_image_url,omitempty"`
	Terms        string `json:"terms,omitempty"`
	ExpiresAt    *int64 `json:"expires_at,omitempty"`
	IssuedAt     int64  `json:"issued_at"`
	IsIndividual bool   `json:"is_individual"`
	Recipient    string `json:"recipient_name,omitempty"`
	Sender       string `json:"sender_name,omitempty"`
	RedeemedAt   *int64 `json:"redeemed_at,omitempty"`
	RedeemedBy   string `json:"redeemed_by,omitempty"`
	Channel      string `json:"redeemer_channel,omitempty"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	res := &CouponResponse{
		Code:         v.Code,
		Period:       v.PeriodKey,
		Status:       v.Status,
		Title:        v.Title,
		Subtitle:     v.Subtitle,
		ValueText:    v.ValueText,
		BgImageURL:   v.BgImageURL,
		Terms:        v.Terms,
		IssuedAt:     v.IssuedAt.Unix(),
		IsIndividual: v.IsIndividual,
		Recipient:    v.RecipientName,
		Sender:       v.SenderName,
		RedeemedBy:   v.RedeemerName,
		Channel:      v.RedeemerChannel,
	}
	if v.ExpiresAt != nil {
		ts := v.ExpiresAt.Unix()
		res.ExpiresAt = &ts
	}
	if v.RedeemedAt != nil {
		ts := v.RedeemedAt.Unix()
		res.RedeemedAt = &ts
	}
	return res
}

func FromCouponList(items []*queries.CouponView) []*CouponResponse {
	res := make([]*CouponResponse, len(items))
	for i, it := range items {
		res[i] = FromCouponView(it)
	}
	return res
}

type QuotaUsageResponse struct {
	Period    string `json:"period"`
	Issued    int64  `json:"issued"`
	Ceiling   int64  `json:"ceiling"`
	Remaining int64  `json:"remaining"`
}

func FromQuotaUsage(q *queries.QuotaUsage) *QuotaUsageResponse {
	return &QuotaUsageResponse{
		Period:    q.Period,
		Issued:    q.Issued,
		Ceiling:   q.Ceiling,
		Remaining: q.Remaining,
	}
}
