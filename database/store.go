package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Delete when no row carries the given id.
var ErrNotFound = errors.New("record not found")

// Store is the create/list/delete surface shared by every record type.
// Identity and created_at are assigned by the database on insert.
type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

func (s *Store[T]) Create(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// List returns every record newest first. id breaks ties between rows
// created within the same clock tick.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).Error
	return records, err
}

func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	var zero T
	result := s.db.WithContext(ctx).Delete(&zero, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping checks the underlying connection.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
