package service

import (
	"context"
	"errors"
	"fmt"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/ledger"
	"campusrent-backend/internal/logger"
	"campusrent-backend/internal/policy"
	"campusrent-backend/internal/repository"
)

// ErrUnknownUser is returned when the caller's user id matches no account.
var ErrUnknownUser = errors.New("unknown user")

type rentalService struct {
	ledger   *ledger.Ledger
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
	recRepo  repository.RecordRepository
}

// NewRentalService wires the in-memory ledger to its persistence
// collaborators. The ledger stays the source of truth; repository writes are
// write-behind so a storage hiccup never corrupts the reservation state.
func NewRentalService(
	l *ledger.Ledger,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	recRepo repository.RecordRepository,
) RentalService {
	return &rentalService{
		ledger:   l,
		userRepo: userRepo,
		itemRepo: itemRepo,
		recRepo:  recRepo,
	}
}

func (s *rentalService) Rent(ctx context.Context, userID, itemName string) (*RentOutcome, error) {
	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rec, err := s.ledger.Rent(user, itemName)
	if err != nil {
		return nil, err
	}

	feePolicy := policy.SelectDiscount(user.Category)
	item, _ := s.ledger.GetItem(itemName)
	outcome := &RentOutcome{
		Record:          rec,
		ChargedFeeCents: feePolicy.Apply(item.BaseFeeCents),
		FeePolicy:       feePolicy.Name(),
	}

	if err := s.recRepo.Create(ctx, &rec); err != nil {
		logger.Error("failed to persist rental record", "record_id", rec.ID, "error", err)
	}
	s.persistHolders(ctx, itemName)

	logger.Info("item rented", "user", user.ID, "item", itemName, "due", rec.DueDate, "fee_cents", outcome.ChargedFeeCents, "fee_policy", outcome.FeePolicy)
	return outcome, nil
}

func (s *rentalService) Return(ctx context.Context, userID, itemName string) (*ledger.Settlement, error) {
	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	settlement, err := s.ledger.Return(user, itemName)
	if err != nil {
		if errors.Is(err, ledger.ErrInconsistency) {
			logger.Error("ledger inconsistency on return", "user", userID, "item", itemName)
		}
		return nil, err
	}

	if err := s.recRepo.UpdateSettlement(ctx, &settlement.Record); err != nil {
		logger.Error("failed to persist settlement", "record_id", settlement.Record.ID, "error", err)
	}
	s.persistHolders(ctx, itemName)

	logger.Info("item returned", "user", user.ID, "item", itemName, "policy", settlement.PolicyName, "refund_cents", settlement.RefundAmountCents)
	return &settlement, nil
}

func (s *rentalService) ListItems(ctx context.Context) []domain.Item {
	return s.ledger.Items()
}

func (s *rentalService) ListHistory(ctx context.Context) []domain.RentalRecord {
	return s.ledger.History()
}

func (s *rentalService) ListUserHistory(ctx context.Context, userID string) []domain.RentalRecord {
	return s.ledger.HistoryForUser(userID)
}

func (s *rentalService) lookupUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, userID)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *rentalService) persistHolders(ctx context.Context, itemName string) {
	item, ok := s.ledger.GetItem(itemName)
	if !ok {
		return
	}
	if err := s.itemRepo.UpdateHolders(ctx, itemName, item.Holders); err != nil {
		logger.Error("failed to persist holders", "item", itemName, "error", err)
	}
}
