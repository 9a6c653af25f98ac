package conversation

import (
	"context"
	"errors"

	"github.com/atlasdesk/support-backend/internal/analytics"
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
	return s.db.AutoMigrate(&Conversation{}, &Message{})
}

type ListFilter struct {
	ChatbotID string
	Source    string
	Customer  string
	Limit     int
	Offset    int
}

const defaultListLimit = 50

func (s *Store) List(ctx context.Context, f ListFilter) ([]*Conversation, int64, error) {
	q := s.db.WithContext(ctx).Model(&Conversation{})
	if f.ChatbotID != "" {
		q = q.Where("chatbot_id = ?", f.ChatbotID)
	}
	if f.Source != "" {
		q = q.Where("source = ?", f.Source)
	}
	if f.Customer != "" {
		q = q.Where("customer = ?", f.Customer)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var convs []*Conversation
	err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&convs).Error
	return convs, total, err
}

func (s *Store) GetWithMessages(ctx context.Context, id string) (*Conversation, error) {
	var conv Conversation
	err := s.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &conv, err
}

// UpsertBatch stores a batch synced from the upstream bot API. Messages
// are replaced wholesale: the upstream export is the source of truth for
// a conversation's transcript.
func (s *Store) UpsertBatch(ctx context.Context, convs []*Conversation) error {
	if len(convs) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, conv := range convs {
			if conv.ID == "" {
				conv.ID = shared.NewID("conv_")
			}
			msgs := conv.Messages
			conv.Messages = nil

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(conv).Error; err != nil {
				return err
			}

			if err := tx.Where("conversation_id = ?", conv.ID).Delete(&Message{}).Error; err != nil {
				return err
			}
			for i := range msgs {
				if msgs[i].ID == "" {
					msgs[i].ID = shared.NewID("msg_")
				}
				msgs[i].ConversationID = conv.ID
				msgs[i].Position = i
			}
			if len(msgs) > 0 {
				if err := tx.Create(&msgs).Error; err != nil {
					return err
				}
			}
			conv.Messages = msgs
		}
		return nil
	})
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&Message{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Conversation{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Records loads the batch the analytics aggregator consumes. It satisfies
// analytics.ConversationSource.
func (s *Store) Records(ctx context.Context, chatbotID string) ([]analytics.Record, error) {
	q := s.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	if chatbotID != "" {
		q = q.Where("chatbot_id = ?", chatbotID)
	}

	var convs []*Conversation
	if err := q.Find(&convs).Error; err != nil {
		return nil, err
	}

	records := make([]analytics.Record, 0, len(convs))
	for _, conv := range convs {
		rec := analytics.Record{
			ID:        conv.ID,
			CreatedAt: conv.StartedAt,
			Source:    conv.Source,
			Customer:  conv.Customer,
			Country:   conv.Country,
			Messages:  make([]analytics.Message, 0, len(conv.Messages)),
		}
		for _, m := range conv.Messages {
			rec.Messages = append(rec.Messages, analytics.Message{
				Role:      m.Role,
				Content:   m.Content,
				Timestamp: m.Timestamp,
			})
		}
		records = append(records, rec)
	}
	return records, nil
}
