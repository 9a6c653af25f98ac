package bootstrap

import (
	"context"
	"log/slog"

	"github.com/atlasdesk/support-backend/internal/events"
	"go.uber.org/fx"
)

func ProvideHub(logger *slog.Logger) *events.Hub {
	return events.NewHub(logger)
}

func StartHub(lc fx.Lifecycle, hub *events.Hub) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			hub.Stop()
			return nil
		},
	})
}

var EventsModule = fx.Options(
	fx.Provide(ProvideHub),
	fx.Invoke(StartHub),
)
