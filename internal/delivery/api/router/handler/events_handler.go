package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// heartbeatInterval keeps idle SSE connections open through proxies.
const heartbeatInterval = 15 * time.Second

// EventSubscriber is the in-process source of cart events.
type EventSubscriber interface {
	Subscribe() (<-chan *service.CartEvent, func())
}

// StreamEvents streams cart events as server-sent events. The current state is
// sent first so a client does not need a separate GET to initialize.
func (h *CartHandler) StreamEvents(c echo.Context) error {
	events, unsubscribe := h.events.Subscribe()
	defer unsubscribe()

	res := c.Response()
	// The stream outlives the server write timeout.
	if err := http.NewResponseController(res).SetWriteDeadline(time.Time{}); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Debug("Write deadline not supported for event stream", slog.Any("error", err))
	}

	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if err := writeEvent(res, "cart.state", h.cartUC.State()); err != nil {
		return nil
	}
	res.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(res, string(event.Type), event); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, data)

	return err
}
