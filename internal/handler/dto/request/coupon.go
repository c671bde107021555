package request

import (
	"time"

	"issuance-engine/internal/domain/coupon"
	"issuance-engine/internal/usecase/commands"
)

type CouponTemplate struct {
	Title      string     `json:"title" binding:"required,max=120"`
	Subtitle   string     `json:"subtitle" binding:"max=200"`
	ValueText  string     `json:"value_text" binding:"required,max=120"`
	BgImageURL string     `json:"bg_image_url" binding:"omitempty,url,max=500"`
	Terms      string     `json:"terms" binding:"max=2000"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

func (t CouponTemplate) ToDomain() coupon.Template {
	return coupon.Template{
		Title:      t.Title,
		Subtitle:   t.Subtitle,
		ValueText:  t.ValueText,
		BgImageURL: t.BgImageURL,
		Terms:      t.Terms,
		ExpiresAt:  t.ExpiresAt,
	}
}

type CreateCouponBatchRequest struct {
	// MonthKey is YYYYMM; omitted means the current month.
	MonthKey string `json:"month_key,omitempty" binding:"omitempty,len=6,numeric"`
	// Deprecated: Period is the former name of MonthKey. Sending both is rejected.
	Period   string         `json:"period,omitempty" binding:"omitempty,len=6,numeric,excluded_with=MonthKey"`
	Count    int64          `json:"count" binding:"required,min=1"`
	Template CouponTemplate `json:"template" binding:"required"`
}

func (r *CreateCouponBatchRequest) monthKey() string {
	if r.MonthKey != "" {
		return r.MonthKey
	}
	return r.Period
}

func (r *CreateCouponBatchRequest) ToCommand() commands.IssueBatchRequest {
	return commands.IssueBatchRequest{
		Period:   r.monthKey(),
		Count:    r.Count,
		Template: r.Template.ToDomain(),
	}
}

type CreateSingleCouponRequest struct {
	RecipientName string         `json:"recipient_name" binding:"required,max=120"`
	SenderName    string         `json:"sender_name" binding:"required,max=120"`
	Template      CouponTemplate `json:"template" binding:"required"`
}

func (r *CreateSingleCouponRequest) ToCommand() commands.IssueSingleRequest {
	return commands.IssueSingleRequest{
		RecipientName: r.RecipientName,
		SenderName:    r.SenderName,
		Template:      r.Template.ToDomain(),
	}
}

type RedeemCouponRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Contact string `json:"contact" binding:"required,max=200"`
	Channel string `json:"channel" binding:"omitempty,oneof=web whatsapp email phone in_store"`
}

func (r *RedeemCouponRequest) ToCommand(code string) commands.RedeemRequest {
	return commands.RedeemRequest{
		Code:    code,
		Name:    r.Name,
		Contact: r.Contact,
		Channel: r.Channel,
	}
}
