package main

import (
	"context"
	"fmt"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/logger"
	"campusrent-backend/internal/repository/postgres"
	"campusrent-backend/internal/service"
)

type seedUser struct {
	id       string
	name     string
	category domain.UserCategory
	password string
}

// seedIfEmpty populates a fresh database with the default accounts and the
// campus item catalog. A non-empty users table means the instance has already
// been provisioned and nothing is touched.
func seedIfEmpty(ctx context.Context, store *postgres.Store) error {
	count, err := store.UserRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	logger.Info("Empty database detected, seeding default data")

	users := []seedUser{
		{id: "admin", name: "Administrator", category: domain.UserCategoryAdmin, password: "admin123"},
		{id: "student1", name: "Minjun Kim", category: domain.UserCategoryStudent, password: "1234"},
		{id: "staff1", name: "Seonwoo Park", category: domain.UserCategoryStaff, password: "1234"},
	}
	for _, u := range users {
		hash, err := service.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", u.id, err)
		}
		if err := store.UserRepository.Create(ctx, &domain.User{
			ID:           u.id,
			Name:         u.name,
			Category:     u.category,
			PasswordHash: hash,
		}); err != nil {
			return fmt.Errorf("creating user %s: %w", u.id, err)
		}
	}

	items := []*domain.Item{
		domain.NewItem("Folding Umbrella", 10, 1000, 5000, 3),
		domain.NewItem("Soccer Ball", 5, 2000, 10000, 2),
		domain.NewItem("Power Bank", 15, 1500, 10000, 1),
		domain.NewItem("USB-C Charger", 20, 500, 5000, 1),
		domain.NewItem("8-Pin Charger", 20, 500, 5000, 1),
	}
	for _, item := range items {
		if err := store.ItemRepository.Create(ctx, item); err != nil {
			return fmt.Errorf("creating item %s: %w", item.Name, err)
		}
	}

	logger.Info("Seed complete", "users", len(users), "items", len(items))
	return nil
}
