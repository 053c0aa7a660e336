// Package store holds the document collections behind the service: found-item
// records and the read-only user collection.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

// New connects to PostgreSQL, configures the pool and applies migrations.
func New(databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateItem inserts a new found-item record.
func (s *Store) CreateItem(ctx context.Context, item *models.FoundItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create found item: %w", err)
	}
	return nil
}

// ListItems returns every found-item record. The matching flow scans the
// whole collection on each request; acceptable at this scale.
func (s *Store) ListItems(ctx context.Context) ([]models.FoundItem, error) {
	var items []models.FoundItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list found items: %w", err)
	}
	return items, nil
}

// GetItem fetches one record by id.
func (s *Store) GetItem(ctx context.Context, id string) (*models.FoundItem, error) {
	var item models.FoundItem
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get found item: %w", err)
	}
	return &item, nil
}

// DeleteItem removes one record by id.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.FoundItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete found item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindUser looks a user up by username.
func (s *Store) FindUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
