package queries

import (
	"context"

	"issuance-engine/internal/infra"
	"issuance-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOfferNotFound = errs.New("offer not found")

//go:generate mockgen -source=offer.go -destination=../../../tests/mock/queries/offer_mock.go -package=queriesmock

type OfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type OfferQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type offerQueriesImpl struct {
	repo OfferReadStore
}

func NewOfferQueries(repo OfferReadStore) OfferQueries {
	return &offerQueriesImpl{repo: repo}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrOfferNotFound)
		}
		return nil, err
	}
	return view, nil
}
