package pubsub

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for CartEventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Broker *Broker
	Logger *slog.Logger
}

// NewCartEventPublisher always delivers to the in-process broker and, when
// events.provider is set, to one external sink as well.
func NewCartEventPublisher(params PublisherParams) (service.CartEventPublisher, error) {
	cfg := params.Config.Events
	logger := params.Logger

	sink, err := newExternalSink(cfg, logger)
	if err != nil {
		return nil, err
	}

	publisher := service.CartEventPublisher(params.Broker)
	if sink != nil {
		publisher = newFanoutPublisher(params.Broker, sink)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing CartEventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newExternalSink(cfg *config.EventsConfig, logger *slog.Logger) (service.CartEventPublisher, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.EventsProviderNone {
		logger.Info("No external cart event sink configured")

		return nil, nil
	}

	switch cfg.Provider {
	case constants.EventsProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for cart events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.EventsProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for cart events",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		// The client keeps using this context after construction.
		return NewGooglePubSubPublisher(context.Background(), cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown events provider: %s", cfg.Provider)
	}
}

// Module provides the cart event FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBroker,
		NewCartEventPublisher,
	),
)
