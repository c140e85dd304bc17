package pubsub

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// fanoutPublisher delivers each event to every publisher and joins their errors.
type fanoutPublisher struct {
	publishers []service.CartEventPublisher
}

func newFanoutPublisher(publishers ...service.CartEventPublisher) service.CartEventPublisher {
	return &fanoutPublisher{publishers: publishers}
}

func (p *fanoutPublisher) PublishCartEvent(ctx context.Context, event *service.CartEvent) error {
	var errs []error
	for _, publisher := range p.publishers {
		if err := publisher.PublishCartEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (p *fanoutPublisher) Close() error {
	var errs []error
	for _, publisher := range p.publishers {
		if err := publisher.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
