package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/atlasdesk/support-backend/internal/chatbot"
	"github.com/atlasdesk/support-backend/internal/conversation"
	"github.com/atlasdesk/support-backend/internal/operator"
	"github.com/atlasdesk/support-backend/internal/shared"
	"github.com/atlasdesk/support-backend/internal/translation"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func ProvideConversationStore(db *gorm.DB) *conversation.Store {
	return conversation.NewStore(db)
}

func ProvideChatbotStore(db *gorm.DB) *chatbot.Store {
	return chatbot.NewStore(db)
}

func ProvideTranslationStore(db *gorm.DB) *translation.Store {
	return translation.NewStore(db)
}

func ProvideOperatorStore(db *gorm.DB) *operator.Store {
	return operator.NewStore(db)
}

func RunMigrations(
	conversationStore *conversation.Store,
	chatbotStore *chatbot.Store,
	translationStore *translation.Store,
	operatorStore *operator.Store,
) error {
	if err := conversationStore.Migrate(); err != nil {
		return err
	}
	if err := chatbotStore.Migrate(); err != nil {
		return err
	}
	if err := translationStore.Migrate(); err != nil {
		return err
	}
	return operatorStore.Migrate()
}

// SeedAdminOperator creates the initial admin account from the environment
// when no operator with that email exists yet.
func SeedAdminOperator(cfg *Config, store *operator.Store, logger *slog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	ctx := context.Background()
	if _, err := store.GetByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	op := &operator.Operator{
		Email: cfg.AdminEmail,
		Name:  cfg.AdminName,
		Role:  operator.RoleAdmin,
	}
	if err := store.Create(ctx, op, cfg.AdminPassword); err != nil {
		return err
	}

	logger.Info("seeded admin operator", "email", cfg.AdminEmail)
	return nil
}

var StoresModule = fx.Options(
	fx.Provide(
		ProvideConversationStore,
		ProvideChatbotStore,
		ProvideTranslationStore,
		ProvideOperatorStore,
	),
	fx.Invoke(RunMigrations),
	fx.Invoke(SeedAdminOperator),
)
