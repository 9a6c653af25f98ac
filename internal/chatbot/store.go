package chatbot

import (
	"context"
	"errors"

	"github.com/atlasdesk/support-backend/internal/shared"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Config{})
}

// Get returns the active configuration. The dashboard manages one chatbot;
// a missing row means setup has not happened yet.
func (s *Store) Get(ctx context.Context) (*Config, error) {
	var cfg Config
	err := s.db.WithContext(ctx).Order("created_at ASC").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &cfg, err
}

func (s *Store) Upsert(ctx context.Context, cfg *Config) error {
	existing, err := s.Get(ctx)
	if err == nil {
		cfg.ID = existing.ID
		cfg.CreatedAt = existing.CreatedAt
		return s.db.WithContext(ctx).Save(cfg).Error
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	if cfg.ID == "" {
		cfg.ID = shared.NewID("cfg_")
	}
	return s.db.WithContext(ctx).Create(cfg).Error
}

// RotateBotID points the dashboard at a different upstream bot.
func (s *Store) RotateBotID(ctx context.Context, botID string) (*Config, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.BotID = botID
	if err := s.db.WithContext(ctx).Save(cfg).Error; err != nil {
		return nil, err
	}
	return cfg, nil
}
