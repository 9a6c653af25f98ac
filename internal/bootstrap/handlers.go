package bootstrap

import (
	"log/slog"
	"os"

	"github.com/atlasdesk/support-backend/internal/analytics"
	"github.com/atlasdesk/support-backend/internal/auth"
	"github.com/atlasdesk/support-backend/internal/chatbot"
	"github.com/atlasdesk/support-backend/internal/conversation"
	"github.com/atlasdesk/support-backend/internal/events"
	"github.com/atlasdesk/support-backend/internal/operator"
	"github.com/atlasdesk/support-backend/internal/translation"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvideJWTValidator(cfg *Config) *auth.JWTValidator {
	return auth.NewJWTValidator(cfg.HMACKey)
}

func ProvideJWTMiddleware(validator *auth.JWTValidator) *auth.Middleware {
	return auth.NewMiddleware(validator)
}

func ProvideAnalyticsCache(redisClient *redis.Client) *analytics.Cache {
	return analytics.NewCache(redisClient)
}

func ProvideAnalyticsHandler(store *conversation.Store, cache *analytics.Cache, hub *events.Hub, logger *slog.Logger) *analytics.Handler {
	return analytics.NewHandler(store, cache, hub, logger.With("handler", "analytics"))
}

func ProvideConversationHandler(store *conversation.Store, hub *events.Hub, logger *slog.Logger) *conversation.Handler {
	return conversation.NewHandler(store, hub, logger.With("handler", "conversation"))
}

func ProvideChatbotHandler(store *chatbot.Store, logger *slog.Logger) *chatbot.Handler {
	return chatbot.NewHandler(store, logger.With("handler", "chatbot"))
}

func ProvideTranslationHandler(store *translation.Store, logger *slog.Logger) *translation.Handler {
	return translation.NewHandler(store, logger.With("handler", "translation"))
}

func ProvideOperatorHandler(store *operator.Store, validator *auth.JWTValidator, logger *slog.Logger) *operator.Handler {
	return operator.NewHandler(store, validator, logger.With("handler", "operator"))
}

func ProvideEventsHandler(hub *events.Hub, logger *slog.Logger) *events.Handler {
	return events.NewHandler(hub, logger.With("handler", "events"))
}

type HandlerParams struct {
	fx.In

	AnalyticsHandler    *analytics.Handler
	ConversationHandler *conversation.Handler
	ChatbotHandler      *chatbot.Handler
	TranslationHandler  *translation.Handler
	OperatorHandler     *operator.Handler
	EventsHandler       *events.Handler
	JWTMiddleware       *auth.Middleware
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	api := e.Group("/v1")

	params.OperatorHandler.RegisterPublicRoutes(api.Group("/auth"))

	authGroup := api.Group("/auth")
	authGroup.Use(params.JWTMiddleware.Authenticate)
	params.OperatorHandler.RegisterRoutes(authGroup)

	analyticsGroup := api.Group("/analytics")
	analyticsGroup.Use(params.JWTMiddleware.Authenticate)
	params.AnalyticsHandler.RegisterRoutes(analyticsGroup)

	conversationsGroup := api.Group("/conversations")
	conversationsGroup.Use(params.JWTMiddleware.Authenticate)
	params.ConversationHandler.RegisterRoutes(conversationsGroup)

	chatbotGroup := api.Group("/chatbot")
	chatbotGroup.Use(params.JWTMiddleware.Authenticate)
	params.ChatbotHandler.RegisterRoutes(chatbotGroup)

	translationsGroup := api.Group("/translations")
	translationsGroup.Use(params.JWTMiddleware.Authenticate)
	params.TranslationHandler.RegisterRoutes(translationsGroup)

	eventsGroup := api.Group("/events")
	eventsGroup.Use(params.JWTMiddleware.Authenticate)
	params.EventsHandler.RegisterRoutes(eventsGroup)
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideJWTValidator,
		ProvideJWTMiddleware,
		ProvideAnalyticsCache,
		ProvideAnalyticsHandler,
		ProvideConversationHandler,
		ProvideChatbotHandler,
		ProvideTranslationHandler,
		ProvideOperatorHandler,
		ProvideEventsHandler,
	),
	fx.Invoke(RegisterRoutes),
)
