package service

import (
	"context"
	"time"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/ledger"
)

// RentOutcome is what a successful rent call reports back: the created record
// plus the fee charged for this session. The charged fee comes from the
// discount policy and is independent of the deposit/refund axis.
type RentOutcome struct {
	Record          domain.RentalRecord `json:"record"`
	ChargedFeeCents int64               `json:"charged_fee_cents"`
	FeePolicy       string              `json:"fee_policy"`
}

type RentalService interface {
	Rent(ctx context.Context, userID, itemName string) (*RentOutcome, error)
	Return(ctx context.Context, userID, itemName string) (*ledger.Settlement, error)
	ListItems(ctx context.Context) []domain.Item
	ListHistory(ctx context.Context) []domain.RentalRecord
	ListUserHistory(ctx context.Context, userID string) []domain.RentalRecord
}

type AuthService interface {
	// Login verifies credentials and returns a session token plus the
	// authenticated user.
	Login(ctx context.Context, userID, password string) (string, *domain.User, error)
}

type AdminService interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, name string) error
	CreateUser(ctx context.Context, id, name string, category domain.UserCategory, password string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

type EmailService interface {
	SendOverdueDigest(ctx context.Context, records []domain.RentalRecord, now time.Time) error
}
