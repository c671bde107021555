package converter

import (
	"issuance-engine/internal/domain/offer"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/pkg/pgconv"
)

func OfferToCreateParams(o *offer.Offer) sqlc.CreateOfferParams {
	s := o.Snapshot()
	return sqlc.CreateOfferParams{
		ID:               s.ID,
		Number:           s.Number,
		CustomerID:       s.CustomerID,
		Status:           s.Status,
		DocumentTitle:    pgconv.StringToPgtype(s.DocumentTitle),
		IntroductoryText: pgconv.StringToPgtype(s.IntroductoryText),
		Notes:            pgconv.StringToPgtype(s.Notes),
		IssueDate:        pgconv.DatePtrToPgtype(s.IssueDate),
		ExpiryDate:       pgconv.DatePtrToPgtype(s.ExpiryDate),
		Subtotal:         pgconv.DecimalToNumeric(s.Subtotal),
		Tax:              pgconv.DecimalToNumeric(s.Tax),
		Total:            pgconv.DecimalToNumeric(s.Total),
		CreatedBy:        s.CreatedBy,
		CreatedAt:        pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(s.UpdatedAt),
		SentAt:           pgconv.TimePtrToPgtype(s.SentAt),
		SeenAt:           pgconv.TimePtrToPgtype(s.SeenAt),
		ClosedAt:         pgconv.TimePtrToPgtype(s.ClosedAt),
	}
}

func OfferToUpdateParams(o *offer.Offer) sqlc.UpdateOfferParams {
	p := OfferToCreateParams(o)
	return sqlc.UpdateOfferParams{
		ID:               p.ID,
		CustomerID:       p.CustomerID,
		Status:           p.Status,
		DocumentTitle:    p.DocumentTitle,
		IntroductoryText: p.IntroductoryText,
		Notes:            p.Notes,
		IssueDate:        p.IssueDate,
		ExpiryDate:       p.ExpiryDate,
		Subtotal:         p.Subtotal,
		Tax:              p.Tax,
		Total:            p.Total,
		UpdatedAt:        p.UpdatedAt,
		SentAt:           p.SentAt,
		SeenAt:           p.SeenAt,
		ClosedAt:         p.ClosedAt,
	}
}

func OfferItemsToCopyParams(o *offer.Offer) []sqlc.CreateOfferItemsParams {
	s := o.Snapshot()
	out := make([]sqlc.CreateOfferItemsParams, len(s.Items))
	for i, it := range s.Items {
		out[i] = sqlc.CreateOfferItemsParams{
			OfferID:     s.ID,
			Position:    int32(it.Position),
			Description: it.Description,
			Quantity:    pgconv.DecimalToNumeric(it.Quantity),
			Price:       pgconv.DecimalToNumeric(it.Price),
			Discount:    pgconv.DecimalToNumeric(it.Discount),
			TaxRate:     pgconv.DecimalToNumeric(it.TaxRate),
			Subtotal:    pgconv.DecimalToNumeric(it.Subtotal),
			Tax:         pgconv.DecimalToNumeric(it.Tax),
			Total:       pgconv.DecimalToNumeric(it.Total),
		}
	}
	return out
}

// OfferSnapshotFromRows rebuilds the persisted form from the offer row and its items.
func OfferSnapshotFromRows(row sqlc.Offers, items []sqlc.OfferItems) (offer.Snapshot, error) {
	s := offer.Snapshot{
		ID:               row.ID,
		Number:           row.Number,
		CustomerID:       row.CustomerID,
		Status:           row.Status,
		DocumentTitle:    pgconv.StringFromPgtype(row.DocumentTitle),
		IntroductoryText: pgconv.StringFromPgtype(row.IntroductoryText),
		Notes:            pgconv.StringFromPgtype(row.Notes),
		IssueDate:        pgconv.DatePtrFromPgtype(row.IssueDate),
		ExpiryDate:       pgconv.DatePtrFromPgtype(row.ExpiryDate),
		CreatedBy:        row.CreatedBy,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		SentAt:           pgconv.TimePtrFromPgtype(row.SentAt),
		SeenAt:           pgconv.TimePtrFromPgtype(row.SeenAt),
		ClosedAt:         pgconv.TimePtrFromPgtype(row.ClosedAt),
	}
	var err error
	if s.Subtotal, err = pgconv.DecimalFromNumeric(row.Subtotal); err != nil {
		return offer.Snapshot{}, err
	}
	if s.Tax, err = pgconv.DecimalFromNumeric(row.Tax); err != nil {
		return offer.Snapshot{}, err
	}
	if s.Total, err = pgconv.DecimalFromNumeric(row.Total); err != nil {
		return offer.Snapshot{}, err
	}

	s.Items = make([]offer.ItemSnapshot, len(items))
	for i, it := range items {
		item := offer.ItemSnapshot{Position: int(it.Position), Description: it.Description}
		if item.Quantity, err = pgconv.DecimalFromNumeric(it.Quantity); err != nil {
			return offer.Snapshot{}, err
		}
		if item.Price, err = pgconv.DecimalFromNumeric(it.Price); err != nil {
			return offer.Snapshot{}, err
		}
		if item.Discount, err = pgconv.DecimalFromNumeric(it.Discount); err != nil {
			return offer.Snapshot{}, err
		}
		if item.TaxRate, err = pgconv.DecimalFromNumeric(it.TaxRate); err != nil {
			return offer.Snapshot{}, err
		}
		if item.Subtotal, err = pgconv.DecimalFromNumeric(it.Subtotal); err != nil {
			return offer.Snapshot{}, err
		}
		if item.Tax, err = pgconv.DecimalFromNumeric(it.Tax); err != nil {
			return offer.Snapshot{}, err
		}
		if item.Total, err = pgconv.DecimalFromNumeric(it.Total); err != nil {
			return offer.Snapshot{}, err
		}
		s.Items[i] = item
	}
	return s, nil
}
