//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts a certificate directly, bypassing issuance
func CreateTestCertificate(t *testing.T, db DBLike, code, amount, balance, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO certificates (id, code, original_amount, current_balance, status, recipient_email, recipient_name, sender_name)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5, 'recipient@example.com', 'Robin Recipient', 'Sam Sender')`,
		id, code, amount, balance, status)
	require.NoError(t, err)
	return id
}

// returns the stored balance as text with the column's four decimals
func CertificateBalance(t *testing.T, db DBLike, id uuid.UUID) (balance, status string) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT current_balance::text, status FROM certificates WHERE id = $1", id).Scan(&balance, &status)
	require.NoError(t, err)
	return balance, status
}

func CountTransactions(t *testing.T, db DBLike, certificateID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM transactions WHERE certificate_id = $1", certificateID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOutboxEvents(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM outbox_events WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
