package repository

import (
	"context"

	"issuance-engine/internal/domain/offer"
	"issuance-engine/internal/infra"
	"issuance-engine/internal/infra/repository/converter"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOfferParams) error
	CreateOfferItems(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateOfferItemsParams) (int64, error)
	GetOfferForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Offers, error)
	ListOfferItems(ctx context.Context, db sqlc.DBTX, offerID uuid.UUID) ([]sqlc.OfferItems, error)
	DeleteOfferItems(ctx context.Context, db sqlc.DBTX, offerID uuid.UUID) error
	UpdateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOfferParams) (int64, error)
	CountOffersByNumberPrefix(ctx context.Context, db sqlc.DBTX, prefix string) (int64, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
	db      sqlc.DBTX
}

func NewOfferRepository(queries OfferWriteQueries, db sqlc.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	if err := r.queries.CreateOffer(ctx, r.db, converter.OfferToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	if _, err := r.queries.CreateOfferItems(ctx, r.db, converter.OfferItemsToCopyParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create offer items", err)
	}
	return nil
}

func (r *OfferRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOfferForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock offer", err)
	}

	items, err := r.queries.ListOfferItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offer items", err)
	}

	snap, err := converter.OfferSnapshotFromRows(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert offer row", err)
	}
	o, err := offer.FromSnapshot(snap)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild offer", err)
	}
	return o, nil
}

// Update rewrites the header. Line items are replaced only when the draft
// content was edited; status transitions leave them untouched.
func (r *OfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	n, err := r.queries.UpdateOffer(ctx, r.db, converter.OfferToUpdateParams(o))
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	if !o.ContentChanged() {
		return nil
	}
	if err := r.queries.DeleteOfferItems(ctx, r.db, o.ID()); err != nil {
		return infra.WrapRepoErr("failed to delete offer items", err)
	}
	if _, err := r.queries.CreateOfferItems(ctx, r.db, converter.OfferItemsToCopyParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create offer items", err)
	}
	return nil
}

func (r *OfferRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	n, err := r.queries.CountOffersByNumberPrefix(ctx, r.db, prefix)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count offers", err)
	}
	return n, nil
}
