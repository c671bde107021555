//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	reqdto "issuance-engine/internal/handler/dto/request"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/usecase/commands"
	"issuance-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponBuilder struct {
	Code          string
	Period        string
	Status        string
	Title         string
	Subtitle      string
	ValueText     string
	Terms         string
	ExpiresAt     *time.Time
	IssuedBy      uuid.UUID
	IssuedAt      time.Time
	Count         int64
	RecipientName string
	SenderName    string
	RedeemerName  string
	Contact       string
	Channel       string
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		Code:          "DI-202505-0001",
		Period:        "202505",
		Status:        "active",
		Title:         "Descuento de temporada",
		Subtitle:      "Solo en tienda",
		ValueText:     "15% OFF",
		Terms:         "Un uso por cliente",
		IssuedBy:      uuid.New(),
		IssuedAt:      time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC),
		Count:         10,
		RecipientName: "Ana",
		SenderName:    "Luis",
		RedeemerName:  "Carla Gomez",
		Contact:       "+57 300 000 0000",
		Channel:       "whatsapp",
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildTemplateDTO() reqdto.CouponTemplate {
	return reqdto.CouponTemplate{
		Title:     b.Title,
		Subtitle:  b.Subtitle,
		ValueText: b.ValueText,
		Terms:     b.Terms,
		ExpiresAt: b.ExpiresAt,
	}
}

func (b *CouponBuilder) BuildBatchRequestDTO() reqdto.CreateCouponBatchRequest {
	return reqdto.CreateCouponBatchRequest{
		MonthKey: b.Period,
		Count:    b.Count,
		Template: b.BuildTemplateDTO(),
	}
}

func (b *CouponBuilder) BuildSingleRequestDTO() reqdto.CreateSingleCouponRequest {
	return reqdto.CreateSingleCouponRequest{
		RecipientName: b.RecipientName,
		SenderName:    b.SenderName,
		Template:      b.BuildTemplateDTO(),
	}
}

func (b *CouponBuilder) BuildRedeemRequestDTO() reqdto.RedeemCouponRequest {
	return reqdto.RedeemCouponRequest{
		Name:    b.RedeemerName,
		Contact: b.Contact,
		Channel: b.Channel,
	}
}

func (b *CouponBuilder) BuildBatchResult() *commands.IssueBatchResult {
	return &commands.IssueBatchResult{
		Period:       b.Period,
		CreatedCount: b.Count,
		FirstCode:    fmt.Sprintf("DI-%s-%04d", b.Period, 1),
		LastCode:     fmt.Sprintf("DI-%s-%04d", b.Period, b.Count),
	}
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		Code:      b.Code,
		PeriodKey: b.Period,
		Status:    b.Status,
		Title:     b.Title,
		Subtitle:  b.Subtitle,
		ValueText: b.ValueText,
		Terms:     b.Terms,
		ExpiresAt: b.ExpiresAt,
		IssuedBy:  b.IssuedBy,
		IssuedAt:  b.IssuedAt,
	}
}

// BuildRedeemedView is the view after a successful public redemption.
func (b *CouponBuilder) BuildRedeemedView(at time.Time) *queries.CouponView {
	v := b.BuildView()
	v.Status = "redeemed"
	v.RedeemedAt = &at
	v.RedeemerName = b.RedeemerName
	v.RedeemerContact = b.Contact
	v.RedeemerChannel = b.Channel
	return v
}

func (b *CouponBuilder) BuildInfra() sqlc.Coupons {
	return sqlc.Coupons{
		Code:      b.Code,
		PeriodKey: b.Period,
		Status:    b.Status,
		Title:     b.Title,
		Subtitle:  pgtype.Text{String: b.Subtitle, Valid: b.Subtitle != ""},
		ValueText: b.ValueText,
		Terms:     pgtype.Text{String: b.Terms, Valid: b.Terms != ""},
		ExpiresAt: timestamptz(b.ExpiresAt),
		IssuedBy:  b.IssuedBy,
		IssuedAt:  pgtype.Timestamptz{Time: b.IssuedAt, Valid: true},
	}
}

func timestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
