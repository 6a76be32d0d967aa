package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (name, max_stock, base_fee_cents, deposit_cents, return_deadline_days, holders)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, item.Name, item.MaxStock, item.BaseFeeCents, item.DepositCents, item.ReturnDeadlineDays, pq.Array(item.Holders))
	return err
}

func (r *itemRepository) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	item := &domain.Item{}
	var holders pq.StringArray
	query := `SELECT name, max_stock, base_fee_cents, deposit_cents, return_deadline_days, holders FROM items WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&item.Name, &item.MaxStock, &item.BaseFeeCents, &item.DepositCents, &item.ReturnDeadlineDays, &holders)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	item.Holders = holders
	return item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	query := `SELECT name, max_stock, base_fee_cents, deposit_cents, return_deadline_days, holders FROM items ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		var holders pq.StringArray
		if err := rows.Scan(&item.Name, &item.MaxStock, &item.BaseFeeCents, &item.DepositCents, &item.ReturnDeadlineDays, &holders); err != nil {
			return nil, err
		}
		item.Holders = holders
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *itemRepository) UpdateHolders(ctx context.Context, name string, holders []string) error {
	query := `UPDATE items SET holders = $1 WHERE name = $2`
	res, err := r.db.ExecContext(ctx, query, pq.Array(holders), name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *itemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM items`).Scan(&count)
	return count, err
}
