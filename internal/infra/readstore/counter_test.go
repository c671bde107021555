//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"issuance-engine/internal/domain/sequence"
	"issuance-engine/internal/infra"
	"issuance-engine/internal/infra/readstore"
	sqlc "issuance-engine/internal/infra/sqlc/generated"
	readstoremock "issuance-engine/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func TestCounterReadStore_CurrentCount(t *testing.T) {
	ctx := context.Background()
	key, err := sequence.NewCounterKey(sequence.DomainCoupons, "202505")
	require.NoError(t, err)
	params := sqlc.GetCounterParams{Domain: string(sequence.DomainCoupons), PeriodKey: "202505"}

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockCounterReadQueries)
		expectedCount int64
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: existing counter",
			setupMock: func(mock *readstoremock.MockCounterReadQueries) {
				mock.EXPECT().GetCounter(ctx, gomock.Any(), params).Return(sqlc.Counters{Domain: "coupons", PeriodKey: "202505", Count: 590}, nil)
			},
			expectedCount: 590,
		},
		{
			name: "success: absent counter reads as zero",
			setupMock: func(mock *readstoremock.MockCounterReadQueries) {
				mock.EXPECT().GetCounter(ctx, gomock.Any(), params).Return(sqlc.Counters{}, pgx.ErrNoRows)
			},
			expectedCount: 0,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockCounterReadQueries) {
				mock.EXPECT().GetCounter(ctx, gomock.Any(), params).Return(sqlc.Counters{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockCounterReadQueries(ctrl)
			store := readstore.NewCounterReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			count, actualError := store.CurrentCount(ctx, key)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, tc.expectedCount, count)
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (m *mockDBTX) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
