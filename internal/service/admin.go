package service

import (
	"context"
	"errors"
	"fmt"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/ledger"
	"campusrent-backend/internal/logger"
	"campusrent-backend/internal/repository"
)

var ErrUserExists = errors.New("user id already taken")

type adminService struct {
	ledger   *ledger.Ledger
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
}

func NewAdminService(l *ledger.Ledger, itemRepo repository.ItemRepository, userRepo repository.UserRepository) AdminService {
	return &adminService{
		ledger:   l,
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

func (s *adminService) CreateItem(ctx context.Context, item *domain.Item) error {
	if item.Name == "" {
		return fmt.Errorf("item name is required")
	}
	if item.MaxStock <= 0 {
		return fmt.Errorf("max stock must be positive")
	}
	if item.BaseFeeCents < 0 || item.DepositCents < 0 || item.ReturnDeadlineDays < 0 {
		return fmt.Errorf("fee, deposit and deadline must be non-negative")
	}
	if item.Holders == nil {
		item.Holders = []string{}
	}

	if err := s.ledger.AddItem(item); err != nil {
		return err
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		logger.Error("failed to persist item", "item", item.Name, "error", err)
	}
	logger.Info("item added to catalog", "item", item.Name, "max_stock", item.MaxStock)
	return nil
}

// DeleteItem removes an item from the catalog. Open records keep the item
// name as a value and stay settleable against history listings; only new
// rentals and returns of that name become impossible.
func (s *adminService) DeleteItem(ctx context.Context, name string) error {
	if err := s.ledger.RemoveItem(name); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, name); err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Error("failed to delete persisted item", "item", name, "error", err)
	}
	logger.Info("item removed from catalog", "item", name)
	return nil
}

func (s *adminService) CreateUser(ctx context.Context, id, name string, category domain.UserCategory, password string) (*domain.User, error) {
	if id == "" || name == "" || password == "" {
		return nil, fmt.Errorf("id, name and password are required")
	}
	if _, err := s.userRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserExists, id)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           id,
		Name:         name,
		Category:     category,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user created", "user", id, "category", category)
	return user, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
