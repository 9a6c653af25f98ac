package translation

import (
	"context"

	"github.com/atlasdesk/support-backend/internal/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&String{})
}

func (s *Store) Locales(ctx context.Context) ([]string, error) {
	var locales []string
	err := s.db.WithContext(ctx).
		Model(&String{}).
		Distinct("locale").
		Order("locale ASC").
		Pluck("locale", &locales).Error
	return locales, err
}

// Strings returns every key/value pair for a locale as a flat map, the
// shape the dashboard's i18n editor works with.
func (s *Store) Strings(ctx context.Context, locale string) (map[string]string, error) {
	var rows []String
	if err := s.db.WithContext(ctx).Where("locale = ?", locale).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (s *Store) Upsert(ctx context.Context, locale, key, value string) error {
	row := &String{
		ID:     shared.NewID("i18n_"),
		Locale: locale,
		Key:    key,
		Value:  value,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "locale"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(row).Error
}

// Import bulk-loads a locale map, overwriting existing keys.
func (s *Store) Import(ctx context.Context, locale string, strings map[string]string) error {
	if len(strings) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range strings {
			row := &String{
				ID:     shared.NewID("i18n_"),
				Locale: locale,
				Key:    key,
				Value:  value,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "locale"}, {Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Delete(ctx context.Context, locale, key string) error {
	result := s.db.WithContext(ctx).Where("locale = ? AND key = ?", locale, key).Delete(&String{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
