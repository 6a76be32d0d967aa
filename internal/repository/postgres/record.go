package postgres

import (
	"context"
	"database/sql"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/repository"
)

type recordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, rec *domain.RentalRecord) error {
	query := `INSERT INTO rental_records (id, user_id, user_name, item_name, rental_time, due_date, deposit_paid_cents, refund_amount_cents, refund_policy, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.UserID, rec.UserName, rec.ItemName, rec.RentalTime, rec.DueDate, rec.DepositPaidCents, rec.RefundAmountCents, rec.RefundPolicy, rec.Status)
	return err
}

func (r *recordRepository) UpdateSettlement(ctx context.Context, rec *domain.RentalRecord) error {
	query := `UPDATE rental_records SET return_time=$1, refund_amount_cents=$2, refund_policy=$3, status=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, rec.ReturnTime, rec.RefundAmountCents, rec.RefundPolicy, rec.Status, rec.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *recordRepository) List(ctx context.Context) ([]*domain.RentalRecord, error) {
	query := `SELECT id, user_id, user_name, item_name, rental_time, due_date, deposit_paid_cents, return_time, refund_amount_cents, COALESCE(refund_policy, ''), status
	          FROM rental_records ORDER BY rental_time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.RentalRecord
	for rows.Next() {
		rec := &domain.RentalRecord{}
		var returnTime sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.UserName, &rec.ItemName, &rec.RentalTime, &rec.DueDate, &rec.DepositPaidCents, &returnTime, &rec.RefundAmountCents, &rec.RefundPolicy, &rec.Status); err != nil {
			return nil, err
		}
		if returnTime.Valid {
			t := returnTime.Time
			rec.ReturnTime = &t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
