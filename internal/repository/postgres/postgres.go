package postgres

import (
	"database/sql"

	"campusrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ItemRepository
	repository.RecordRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		ItemRepository:   NewItemRepository(db),
		RecordRepository: NewRecordRepository(db),
		UserRepository:   NewUserRepository(db),
	}
}
