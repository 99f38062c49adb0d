package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const transactionColumns = `id, certificate_id, amount_used, balance_after, order_reference, submission_reference, created_at`

func scanTransaction(row pgx.Row) (Transactions, error) {
	var t Transactions
	err := row.Scan(
		&t.ID,
		&t.CertificateID,
		&t.AmountUsed,
		&t.BalanceAfter,
		&t.OrderReference,
		&t.SubmissionReference,
		&t.CreatedAt,
	)
	return t, err
}

const insertTransaction = `
INSERT INTO transactions (
	id, certificate_id, amount_used, balance_after, order_reference, submission_reference, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

type InsertTransactionParams struct {
	ID                  uuid.UUID
	CertificateID       uuid.UUID
	AmountUsed          pgtype.Numeric
	BalanceAfter        pgtype.Numeric
	OrderReference      pgtype.Text
	SubmissionReference pgtype.Text
	CreatedAt           pgtype.Timestamptz
}

func (q *Queries) InsertTransaction(ctx context.Context, db DBTX, arg InsertTransactionParams) error {
	_, err := db.Exec(ctx, insertTransaction,
		arg.ID,
		arg.CertificateID,
		arg.AmountUsed,
		arg.BalanceAfter,
		arg.OrderReference,
		arg.SubmissionReference,
		arg.CreatedAt,
	)
	return err
}

const getTransactionBySubmissionRef = `SELECT ` + transactionColumns + `
FROM transactions
WHERE certificate_id = $1 AND submission_reference = $2`

func (q *Queries) GetTransactionBySubmissionRef(ctx context.Context, db DBTX, certificateID uuid.UUID, submissionRef string) (Transactions, error) {
	return scanTransaction(db.QueryRow(ctx, getTransactionBySubmissionRef, certificateID, submissionRef))
}

const listTransactionsByCertificate = `SELECT ` + transactionColumns + `
FROM transactions
WHERE certificate_id = $1
ORDER BY created_at DESC, id DESC`

func (q *Queries) ListTransactionsByCertificate(ctx context.Context, db DBTX, certificateID uuid.UUID) ([]Transactions, error) {
	rows, err := db.Query(ctx, listTransactionsByCertificate, certificateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Transactions
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// One statement so the balance and the ledger total come from the same snapshot.
const getCertificateReconciliation = `
SELECT c.id,
       c.original_amount,
       c.current_balance,
       COALESCE(SUM(t.amount_used), 0)::numeric(19, 4) AS total_redeemed,
       COUNT(t.id) AS transaction_count
FROM certificates c
LEFT JOIN transactions t ON t.certificate_id = c.id
WHERE c.id = $1
GROUP BY c.id, c.original_amount, c.current_balance`

type GetCertificateReconciliationRow struct {
	ID               uuid.UUID
	OriginalAmount   pgtype.Numeric
	CurrentBalance   pgtype.Numeric
	TotalRedeemed    pgtype.Numeric
	TransactionCount int64
}

func (q *Queries) GetCertificateReconciliation(ctx context.Context, db DBTX, certificateID uuid.UUID) (GetCertificateReconciliationRow, error) {
	var r GetCertificateReconciliationRow
	err := db.QueryRow(ctx, getCertificateReconciliation, certificateID).Scan(
		&r.ID,
		&r.OriginalAmount,
		&r.CurrentBalance,
		&r.TotalRedeemed,
		&r.TransactionCount,
	)
	return r, err
}
