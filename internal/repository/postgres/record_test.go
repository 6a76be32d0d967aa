package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/repository"
	"campusrent-backend/internal/repository/postgres"
)

func TestRecordRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewRecordRepository(db)
	ctx := context.Background()

	now := time.Now()
	rec := &domain.RentalRecord{
		ID:               "rec-1",
		UserID:           "student1",
		UserName:         "Minjun Kim",
		ItemName:         "Power Bank",
		RentalTime:       now,
		DueDate:          now.AddDate(0, 0, 1),
		DepositPaidCents: 10000,
		Status:           domain.RecordStatusActive,
	}

	mock.ExpectExec("INSERT INTO rental_records").
		WithArgs(rec.ID, rec.UserID, rec.UserName, rec.ItemName, rec.RentalTime, rec.DueDate, rec.DepositPaidCents, rec.RefundAmountCents, rec.RefundPolicy, rec.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(ctx, rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_UpdateSettlement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewRecordRepository(db)
	ctx := context.Background()

	returned := time.Now()
	rec := &domain.RentalRecord{
		ID:                "rec-1",
		ReturnTime:        &returned,
		RefundAmountCents: 9000,
		RefundPolicy:      "10% service fee",
		Status:            domain.RecordStatusReturnedOnTime,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_records SET").
			WithArgs(rec.ReturnTime, rec.RefundAmountCents, rec.RefundPolicy, rec.Status, rec.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateSettlement(ctx, rec))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_records SET").
			WithArgs(rec.ReturnTime, rec.RefundAmountCents, rec.RefundPolicy, rec.Status, rec.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateSettlement(ctx, rec), repository.ErrNotFound)
	})
}

func TestRecordRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewRecordRepository(db)
	ctx := context.Background()

	now := time.Now()
	returned := now.Add(2 * time.Hour)
	rows := sqlmock.NewRows([]string{"id", "user_id", "user_name", "item_name", "rental_time", "due_date", "deposit_paid_cents", "return_time", "refund_amount_cents", "refund_policy", "status"}).
		AddRow("rec-1", "student1", "Minjun Kim", "Power Bank", now, now.AddDate(0, 0, 1), 10000, returned, 10000, "full deposit refund", "RETURNED_ON_TIME").
		AddRow("rec-2", "staff1", "Seonwoo Park", "Soccer Ball", now, now.AddDate(0, 0, 2), 10000, nil, 0, "", "ACTIVE")

	mock.ExpectQuery("SELECT (.+) FROM rental_records ORDER BY rental_time").WillReturnRows(rows)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].ReturnTime)
	assert.Equal(t, domain.RecordStatusReturnedOnTime, records[0].Status)
	assert.Equal(t, int64(10000), records[0].RefundAmountCents)

	assert.Nil(t, records[1].ReturnTime)
	assert.Equal(t, domain.RecordStatusActive, records[1].Status)
}
