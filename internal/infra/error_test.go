//go:build unit

package infra_test

import (
	"testing"

	"issuance-engine/internal/infra"
	"issuance-engine/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: infra.KindConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: infra.KindConflict},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errs.New("boom"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tc.err, tc.kind...)
			assert.True(t, infra.IsKind(err, tc.want))
			assert.Contains(t, err.Error(), string(tc.want))
		})
	}

	t.Run("wrapped error keeps the driver error reachable", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "40001"}
		err := errs.Wrap(infra.WrapRepoErr("save counter", pgErr), "allocate")
		var target *pgconn.PgError
		assert.True(t, errs.As(err, &target))
		assert.Equal(t, "40001", target.Code)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}
