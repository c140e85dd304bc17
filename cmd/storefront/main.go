package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/gateway"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/kv"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type cartLifecycleParams struct {
	fx.In

	Lc       fx.Lifecycle
	Observer *impl.AuthObserver
	Engine   *impl.CartEngine
	Logger   *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			registerCartLifecycle,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		storage.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kv.NewGuestCartStore,
			kv.NewCredentialStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			gateway.NewHTTPCartGateway,
			auth.NewJWTInspector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				impl.NewCartEngine,
				fx.As(fx.Self()),
				fx.As(new(usecase.CartUsecase)),
				fx.As(new(usecase.SessionListener)),
			),
			fx.Annotate(
				impl.NewAuthObserver,
				fx.As(fx.Self()),
				fx.As(new(usecase.SessionObserver)),
			),
			impl.NewSessionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			newEventSubscriber,
			handler.NewCartHandler,
			handler.NewSessionHandler,
		),
	)
}

// newEventSubscriber exposes the in-process broker to the event stream handler
func newEventSubscriber(broker *pubsub.Broker) handler.EventSubscriber {
	return broker
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerCartLifecycle starts the cart from the stored session once every
// dependency is up, and stops the observer before the engine on shutdown.
func registerCartLifecycle(params cartLifecycleParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			session := params.Observer.Start(ctx)
			if err := params.Engine.Start(ctx, session); err != nil {
				// The cart stays usable and the next sync retries.
				params.Logger.Warn("Initial cart load failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Observer.Stop()
			params.Engine.Close()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
