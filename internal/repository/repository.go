package repository

import (
	"context"
	"errors"

	"campusrent-backend/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByName(ctx context.Context, name string) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
	// UpdateHolders writes an item's holder list after a reserve or release.
	UpdateHolders(ctx context.Context, name string, holders []string) error
	Delete(ctx context.Context, name string) error
	Count(ctx context.Context) (int, error)
}

type RecordRepository interface {
	Create(ctx context.Context, rec *domain.RentalRecord) error
	// UpdateSettlement writes the one-time settlement of a record: return
	// time, refund amount, policy label and terminal status.
	UpdateSettlement(ctx context.Context, rec *domain.RentalRecord) error
	List(ctx context.Context) ([]*domain.RentalRecord, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int, error)
}
