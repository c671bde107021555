package converter

import (
	"issuance-engine/internal/domain/coupon"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/pkg/pgconv"
)

func CouponToCreateParams(c *coupon.Coupon) sqlc.CreateCouponParams {
	s := c.Snapshot()
	return sqlc.CreateCouponParams{
		Code:          s.Code,
		PeriodKey:     s.PeriodKey,
		Status:        s.Status,
		Title:         s.Title,
		Subtitle:      pgconv.StringToPgtype(s.Subtitle),
		ValueText:     s.ValueText,
		BgImageUrl:    pgconv.StringToPgtype(s.BgImageURL),
		Terms:         pgconv.StringToPgtype(s.Terms),
		ExpiresAt:     pgconv.TimePtrToPgtype(s.ExpiresAt),
		IssuedBy:      s.IssuedBy,
		IssuedAt:      pgconv.TimeToPgtype(s.IssuedAt),
		IsIndividual:  s.IsIndividual,
		RecipientName: pgconv.StringToPgtype(s.RecipientName),
		SenderName:    pgconv.StringToPgtype(s.SenderName),
	}
}

func CouponsToCopyParams(cs []*coupon.Coupon) []sqlc.CreateCouponsParams {
	out := make([]sqlc.CreateCouponsParams, len(cs))
	for i, c := range cs {
		out[i] = sqlc.CreateCouponsParams(CouponToCreateParams(c))
	}
	return out
}

func CouponToRedemptionParams(c *coupon.Coupon) sqlc.UpdateCouponRedemptionParams {
	s := c.Snapshot()
	return sqlc.UpdateCouponRedemptionParams{
		Code:            s.Code,
		Status:          s.Status,
		RedeemedAt:      pgconv.TimePtrToPgtype(s.RedeemedAt),
		RedeemerName:    pgconv.StringToPgtype(s.RedeemerName),
		RedeemerContact: pgconv.StringToPgtype(s.RedeemerContact),
		RedeemerChannel: pgconv.StringToPgtype(s.RedeemerChannel),
		RedeemedByAdmin: pgconv.UUIDPtrToPgtype(s.RedeemedByAdmin),
	}
}

func CouponSnapshotFromRow(row sqlc.Coupons) coupon.Snapshot {
	return coupon.Snapshot{
		Code:            row.Code,
		PeriodKey:       row.PeriodKey,
		Status:          row.Status,
		Title:           row.Title,
		Subtitle:        pgconv.StringFromPgtype(row.Subtitle),
		ValueText:       row.ValueText,
		BgImageURL:      pgconv.StringFromPgtype(row.BgImageUrl),
		Terms:           pgconv.StringFromPgtype(row.Terms),
		ExpiresAt:       pgconv.TimePtrFromPgtype(row.ExpiresAt),
		IssuedBy:        row.IssuedBy,
		IssuedAt:        pgconv.TimeFromPgtype(row.IssuedAt),
		IsIndividual:    row.IsIndividual,
		RecipientName:   pgconv.StringFromPgtype(row.RecipientName),
		SenderName:      pgconv.StringFromPgtype(row.SenderName),
		RedeemedAt:      pgconv.TimePtrFromPgtype(row.RedeemedAt),
		RedeemerName:    pgconv.StringFromPgtype(row.RedeemerName),
		RedeemerContact: pgconv.StringFromPgtype(row.RedeemerContact),
		RedeemerChannel: pgconv.StringFromPgtype(row.RedeemerChannel),
		RedeemedByAdmin: pgconv.UUIDPtrFromPgtype(row.RedeemedByAdmin),
	}
}
