//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"issuance-engine/internal/pkg/errs"
)

// DBLike is satisfied by *pgxpool.Pool, pgx.Tx and *pgx.Conn.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestCustomer(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	var mail any
	if email != "" {
		mail = email
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO customers (id, name, email) VALUES ($1, $2, $3)", customerID, name, mail)
	require.NoError(t, err)

	return customerID
}

func SeedCounter(t *testing.T, db DBLike, domain, period string, count int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO counters (domain, period_key, count) VALUES ($1, $2, $3)
		ON CONFLICT (domain, period_key) DO UPDATE SET count = EXCLUDED.count`,
		domain, period, count)
	require.NoError(t, err)
}

func CounterValue(t *testing.T, db DBLike, domain, period string) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT count FROM counters WHERE domain = $1 AND period_key = $2), 0)",
		domain, period).Scan(&count)
	require.NoError(t, err)
	return count
}

// ResetDB empties every public table so each e2e test starts from zero counters.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := db.Query(ctx, `
		SELECT quote_ident(tablename) FROM pg_tables
		WHERE schemaname = 'public' AND tablename <> 'schema_migrations'
		ORDER BY tablename`)
	if err != nil {
		return errs.Wrap(err, "list tables")
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return errs.Wrap(err, "scan table names")
	}
	if len(tables) == 0 {
		return nil
	}

	if _, err := db.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE"); err != nil {
		return errs.Wrap(err, "truncate tables")
	}
	return nil
}
