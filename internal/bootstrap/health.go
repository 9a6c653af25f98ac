package bootstrap

import (
	"github.com/atlasdesk/support-backend/internal/health"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const version = "1.0.0"

func ProvideHealthHandler(db *gorm.DB, redisClient *redis.Client) *health.Handler {
	return health.NewHandler(db, redisClient, version)
}

func RegisterHealthRoutes(e *echo.Echo, h *health.Handler) {
	h.RegisterRoutes(e)
}

var HealthModule = fx.Options(
	fx.Provide(ProvideHealthHandler),
	fx.Invoke(RegisterHealthRoutes),
)
