//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"issuance-engine/internal/infra"
	"issuance-engine/internal/infra/readstore"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	"issuance-engine/tests/common/builder"
	readstoremock "issuance-engine/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindByCode Tests
// =============================================================================

func TestCouponReadStore_FindByCode(t *testing.T) {
	ctx := context.Background()
	b := builder.NewCouponBuilder()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockCouponReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: coupon found",
			setupMock: func(mock *readstoremock.MockCouponReadQueries) {
				mock.EXPECT().GetCouponByCode(ctx, gomock.Any(), b.Code).Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: coupon not found",
			setupMock: func(mock *readstoremock.MockCouponReadQueries) {
				mock.EXPECT().GetCouponByCode(ctx, gomock.Any(), b.Code).Return(sqlc.Coupons{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockCouponReadQueries) {
				mock.EXPECT().GetCouponByCode(ctx, gomock.Any(), b.Code).Return(sqlc.Coupons{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
			store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, actualError := store.FindByCode(ctx, b.Code)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, b.BuildView(), result)
		})
	}
}

// =============================================================================
// ListByPeriod Tests
// =============================================================================

func TestCouponReadStore_ListByPeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("success: forwards the keyset and converts rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
		store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.Coupons{
			builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Code = "DI-202505-0003" }).BuildInfra(),
			builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Code = "DI-202505-0004" }).BuildInfra(),
		}
		mockQueries.EXPECT().
			ListCouponsByPeriod(ctx, gomock.Any(), sqlc.ListCouponsByPeriodParams{PeriodKey: "202505", Code: "DI-202505-0002", Limit: 3}).
			Return(rows, nil)

		views, err := store.ListByPeriod(ctx, "202505", "DI-202505-0002", 3)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "DI-202505-0003", views[0].Code)
		assert.Equal(t, "DI-202505-0004", views[1].Code)
		assert.Equal(t, "Descuento de temporada", views[1].Title)
	})

	t.Run("success: empty page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
		store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListCouponsByPeriod(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		views, err := store.ListByPeriod(ctx, "202505", "", 50)

		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockCouponReadQueries(ctrl)
		store := readstore.NewCouponReadStore(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().ListCouponsByPeriod(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		views, err := store.ListByPeriod(ctx, "202505", "", 50)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, views)
	})
}
