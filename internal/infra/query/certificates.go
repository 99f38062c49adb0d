package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const certificateColumns = `id, code, original_amount, current_balance, status, recipient_email,
	recipient_name, sender_name, message, delivery_date, design_id, version, created_at, updated_at`

func scanCertificate(row pgx.Row) (Certificates, error) {
	var c Certificates
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.OriginalAmount,
		&c.CurrentBalance,
		&c.Status,
		&c.RecipientEmail,
		&c.RecipientName,
		&c.SenderName,
		&c.Message,
		&c.DeliveryDate,
		&c.DesignID,
		&c.Version,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func collectCertificates(rows pgx.Rows, err error) ([]Certificates, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Certificates
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createCertificate = `
INSERT INTO certificates (
	id, code, original_amount, current_balance, status, recipient_email,
	recipient_name, sender_name, message, delivery_date, design_id, created_at, updated_at
) VALUES ($1, $2, $3, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
RETURNING id`

type CreateCertificateParams struct {
	ID             uuid.UUID
	Code           string
	OriginalAmount pgtype.Numeric
	Status         string
	RecipientEmail string
	RecipientName  string
	SenderName     string
	Message        string
	DeliveryDate   pgtype.Date
	DesignID       pgtype.Text
	CreatedAt      pgtype.Timestamptz
}

func (q *Queries) CreateCertificate(ctx context.Context, db DBTX, arg CreateCertificateParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createCertificate,
		arg.ID,
		arg.Code,
		arg.OriginalAmount,
		arg.Status,
		arg.RecipientEmail,
		arg.RecipientName,
		arg.SenderName,
		arg.Message,
		arg.DeliveryDate,
		arg.DesignID,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getCertificateByID = `SELECT ` + certificateColumns + ` FROM certificates WHERE id = $1`

func (q *Queries) GetCertificateByID(ctx context.Context, db DBTX, id uuid.UUID) (Certificates, error) {
	return scanCertificate(db.QueryRow(ctx, getCertificateByID, id))
}

const getCertificateByCode = `SELECT ` + certificateColumns + ` FROM certificates WHERE code = $1`

func (q *Queries) GetCertificateByCode(ctx context.Context, db DBTX, code string) (Certificates, error) {
	return scanCertificate(db.QueryRow(ctx, getCertificateByCode, code))
}

const certificateCodeExists = `SELECT EXISTS (SELECT 1 FROM certificates WHERE code = $1)`

func (q *Queries) CertificateCodeExists(ctx context.Context, db DBTX, code string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, certificateCodeExists, code).Scan(&exists)
	return exists, err
}

// The WHERE clause is the compare-and-swap: the row must still carry the version
// we read and still be redeemable, otherwise no row comes back.
const compareAndSwapBalance = `
UPDATE certificates
SET current_balance = current_balance - $3,
    status = CASE WHEN current_balance - $3 = 0 THEN 'expired' ELSE status END,
    version = version + 1,
    updated_at = $4
WHERE id = $1
  AND version = $2
  AND status IN ('active', 'delivered')
  AND current_balance >= $3
RETURNING current_balance, status, version`

type CompareAndSwapBalanceParams struct {
	ID              uuid.UUID
	ExpectedVersion int64
	Applied         pgtype.Numeric
	UpdatedAt       pgtype.Timestamptz
}

type CompareAndSwapBalanceRow struct {
	CurrentBalance pgtype.Numeric
	Status         string
	Version        int64
}

func (q *Queries) CompareAndSwapBalance(ctx context.Context, db DBTX, arg CompareAndSwapBalanceParams) (CompareAndSwapBalanceRow, error) {
	row := db.QueryRow(ctx, compareAndSwapBalance, arg.ID, arg.ExpectedVersion, arg.Applied, arg.UpdatedAt)
	var r CompareAndSwapBalanceRow
	err := row.Scan(&r.CurrentBalance, &r.Status, &r.Version)
	return r, err
}

const updateCertificateStatus = `
UPDATE certificates
SET status = $2, version = version + 1, updated_at = $3
WHERE id = $1`

type UpdateCertificateStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateCertificateStatus(ctx context.Context, db DBTX, arg UpdateCertificateStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCertificateStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Absent (NULL) parameters keep the stored value; the clear flags null out the
// optional delivery date and design.
const updateCertificateMetadata = `
UPDATE certificates
SET code            = COALESCE($2, code),
    recipient_email = COALESCE($3, recipient_email),
    recipient_name  = COALESCE($4, recipient_name),
    sender_name     = COALESCE($5, sender_name),
    message         = COALESCE($6, message),
    delivery_date   = CASE WHEN $10::boolean THEN NULL ELSE COALESCE($7, delivery_date) END,
    design_id       = CASE WHEN $11::boolean THEN NULL ELSE COALESCE($8, design_id) END,
    version         = version + 1,
    updated_at      = $9
WHERE id = $1`

type UpdateCertificateMetadataParams struct {
	ID                uuid.UUID
	Code              pgtype.Text
	RecipientEmail    pgtype.Text
	RecipientName     pgtype.Text
	SenderName        pgtype.Text
	Message           pgtype.Text
	DeliveryDate      pgtype.Date
	DesignID          pgtype.Text
	UpdatedAt         pgtype.Timestamptz
	ClearDeliveryDate bool
	ClearDesignID     bool
}

func (q *Queries) UpdateCertificateMetadata(ctx context.Context, db DBTX, arg UpdateCertificateMetadataParams) (int64, error) {
	tag, err := db.Exec(ctx, updateCertificateMetadata,
		arg.ID,
		arg.Code,
		arg.RecipientEmail,
		arg.RecipientName,
		arg.SenderName,
		arg.Message,
		arg.DeliveryDate,
		arg.DesignID,
		arg.UpdatedAt,
		arg.ClearDeliveryDate,
		arg.ClearDesignID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markCertificateDelivered = `
UPDATE certificates
SET status = 'delivered', version = version + 1, updated_at = $2
WHERE id = $1 AND status = 'pending_delivery'`

func (q *Queries) MarkCertificateDelivered(ctx context.Context, db DBTX, id uuid.UUID, updatedAt pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, markCertificateDelivered, id, updatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCertificate = `DELETE FROM certificates WHERE id = $1`

func (q *Queries) DeleteCertificate(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteCertificate, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listCertificatesFirstPage = `SELECT ` + certificateColumns + `
FROM certificates
WHERE ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2`

func (q *Queries) ListCertificatesFirstPage(ctx context.Context, db DBTX, status pgtype.Text, limit int32) ([]Certificates, error) {
	return collectCertificates(db.Query(ctx, listCertificatesFirstPage, status, limit))
}

const listCertificatesKeyset = `SELECT ` + certificateColumns + `
FROM certificates
WHERE ($1::text IS NULL OR status = $1)
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

func (q *Queries) ListCertificatesKeyset(ctx context.Context, db DBTX, status pgtype.Text, lastCreatedAt pgtype.Timestamptz, lastID uuid.UUID, limit int32) ([]Certificates, error) {
	return collectCertificates(db.Query(ctx, listCertificatesKeyset, status, lastCreatedAt, lastID, limit))
}

const listCertificatesDueForDelivery = `SELECT ` + certificateColumns + `
FROM certificates
WHERE status = 'pending_delivery' AND delivery_date <= $1
ORDER BY delivery_date, created_at
LIMIT $2`

func (q *Queries) ListCertificatesDueForDelivery(ctx context.Context, db DBTX, asOf pgtype.Date, limit int32) ([]Certificates, error) {
	return collectCertificates(db.Query(ctx, listCertificatesDueForDelivery, asOf, limit))
}
