package receipts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, items ...models.Receipt) error {
	query := `
		INSERT INTO receipts (appointment_uid, technician_uid, resource_uid, start_time, end_time, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(appointment_uid) DO UPDATE SET
			technician_uid = excluded.technician_uid,
			resource_uid   = excluded.resource_uid,
			start_time     = excluded.start_time,
			end_time       = excluded.end_time,
			status         = excluded.status,
			created_at     = excluded.created_at
	`
	for _, it := range items {
		_, err := r.db.ExecContext(ctx, query,
			it.AppointmentUID,
			nullable(it.TechnicianUID),
			nullable(it.ResourceUID),
			it.StartTime,
			it.EndTime,
			it.Status,
			it.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("failed to save receipt %s: %w", it.AppointmentUID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Receipt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT appointment_uid, technician_uid, resource_uid, start_time, end_time, status, created_at
		FROM receipts
		ORDER BY created_at DESC, start_time
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to select receipts: %w", err)
	}
	defer rows.Close()

	var result []models.Receipt
	for rows.Next() {
		var (
			it         models.Receipt
			tech, res  sql.NullString
			createdRaw string
		)
		if err := rows.Scan(&it.AppointmentUID, &tech, &res, &it.StartTime, &it.EndTime, &it.Status, &createdRaw); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		it.TechnicianUID = tech.String
		it.ResourceUID = res.String
		if it.CreatedAt, err = time.Parse(time.RFC3339Nano, createdRaw); err != nil {
			return nil, fmt.Errorf("bad created_at for receipt %s: %w", it.AppointmentUID, err)
		}
		result = append(result, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM receipts`); err != nil {
		return fmt.Errorf("failed to clear receipts: %w", err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
