package readstore

import (
	"context"

	"issuance-engine/internal/infra"
	"issuance-engine/internal/infra/repository/converter"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/internal/pkg/pgconv"
	"issuance-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=offer.go -destination=../../../tests/mock/readstore/offer_mock.go -package=readstoremock

type OfferReadQueries interface {
	GetOfferView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOfferViewRow, error)
	ListOfferItems(ctx context.Context, db sqlc.DBTX, offerID uuid.UUID) ([]sqlc.OfferItems, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqlc.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqlc.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	row, err := r.queries.GetOfferView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer view by id", err)
	}

	items, err := r.queries.ListOfferItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offer items", err)
	}

	snap, err := converter.OfferSnapshotFromRows(offerRowFromView(row), items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert offer view", err)
	}
	return queries.NewOfferView(snap, row.CustomerName), nil
}

func offerRowFromView(row sqlc.GetOfferViewRow) sqlc.Offers {
	return sqlc.Offers{
		ID:               row.ID,
		Number:           row.Number,
		CustomerID:       row.CustomerID,
		Status:           row.Status,
		DocumentTitle:    row.DocumentTitle,
		IntroductoryText: row.IntroductoryText,
		Notes:            row.Notes,
		IssueDate:        row.IssueDate,
		ExpiryDate:       row.ExpiryDate,
		Subtotal:         row.Subtotal,
		Tax:              row.Tax,
		Total:            row.Total,
		CreatedBy:        row.CreatedBy,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		SentAt:           row.SentAt,
		SeenAt:           row.SeenAt,
		ClosedAt:         row.ClosedAt,
	}
}

var _ queries.OfferReadStore = (*OfferReadStore)(nil)
