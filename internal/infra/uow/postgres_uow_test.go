//go:build unit

package uow

import (
	"testing"
	"time"

	"issuance-engine/internal/infra"
	"issuance-engine/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"wrapped by repository", infra.WrapRepoErr("failed to lock counter", &pgconn.PgError{Code: "40001"}), true},
		{"wrapped twice", errs.Wrap(infra.WrapRepoErr("x", &pgconn.PgError{Code: "40P01"}), "outer"), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errs.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 10 * time.Millisecond
	for attempt := 0; attempt < 5; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.LessOrEqual(t, got, want+want/5)
	}
	capped := calculateBackoff(40, base)
	assert.LessOrEqual(t, capped, 64*base+64*base/5)
	assert.Zero(t, cryptoRandInt63n(0))
}
