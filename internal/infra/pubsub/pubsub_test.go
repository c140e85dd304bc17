package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.CartEvent {
	return &service.CartEvent{
		RequestID:  "req-1",
		Type:       service.CartEventSynced,
		Mode:       entity.ModeAuthenticated,
		CartID:     "31",
		TotalItems: 3,
		TotalPrice: decimal.RequireFromString("89.00"),
		OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestBroker_DeliversToSubscribers(t *testing.T) {
	broker := NewBroker(newDiscardLogger())
	first, unsubFirst := broker.Subscribe()
	second, unsubSecond := broker.Subscribe()
	defer unsubSecond()

	event := newTestEvent()
	require.NoError(t, broker.PublishCartEvent(context.Background(), event))

	assert.Same(t, event, <-first)
	assert.Same(t, event, <-second)

	unsubFirst()
	unsubFirst()
	_, open := <-first
	assert.False(t, open)
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	broker := NewBroker(newDiscardLogger())
	events, unsubscribe := broker.Subscribe()
	defer unsubscribe()

	for range subscriberBuffer + 5 {
		require.NoError(t, broker.PublishCartEvent(context.Background(), newTestEvent()))
	}

	assert.Len(t, events, subscriberBuffer)
}

func TestBroker_CloseEndsSubscriptions(t *testing.T) {
	broker := NewBroker(newDiscardLogger())
	events, unsubscribe := broker.Subscribe()

	require.NoError(t, broker.Close())
	unsubscribe()

	_, open := <-events
	assert.False(t, open)

	late, _ := broker.Subscribe()
	_, open = <-late
	assert.False(t, open)
}

func TestLocalHTTPPublisher_SendsPushMessage(t *testing.T) {
	messages := make(chan PushMessage, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var msg PushMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		messages <- msg
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishCartEvent(context.Background(), newTestEvent()))

	received := <-messages
	assert.Equal(t, "cart.synced", received.Message.Attributes["type"])
	assert.Equal(t, "authenticated", received.Message.Attributes["mode"])
	assert.Equal(t, "31", received.Message.Attributes["cart_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.CartEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, 3, event.TotalItems)
	assert.True(t, decimal.RequireFromString("89").Equal(event.TotalPrice))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishCartEvent(context.Background(), newTestEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFanoutPublisher_JoinsErrors(t *testing.T) {
	broker := NewBroker(newDiscardLogger())
	events, unsubscribe := broker.Subscribe()
	defer unsubscribe()

	failing := mockService.NewMockCartEventPublisher(t)
	failing.EXPECT().PublishCartEvent(mock.Anything, mock.Anything).Return(errors.New("sink down"))
	failing.EXPECT().Close().Return(nil)

	publisher := newFanoutPublisher(broker, failing)
	err := publisher.PublishCartEvent(context.Background(), newTestEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink down")
	assert.Len(t, events, 1)
	require.NoError(t, publisher.Close())
}

func TestNewExternalSink(t *testing.T) {
	logger := newDiscardLogger()

	sink, err := newExternalSink(nil, logger)
	require.NoError(t, err)
	assert.Nil(t, sink)

	sink, err = newExternalSink(&config.EventsConfig{Provider: "none"}, logger)
	require.NoError(t, err)
	assert.Nil(t, sink)

	sink, err = newExternalSink(&config.EventsConfig{Provider: "local", LocalEndpoint: "http://localhost:8090/events"}, logger)
	require.NoError(t, err)
	assert.NotNil(t, sink)

	_, err = newExternalSink(&config.EventsConfig{Provider: "local"}, logger)
	require.Error(t, err)

	_, err = newExternalSink(&config.EventsConfig{Provider: "google", ProjectID: "farm"}, logger)
	require.Error(t, err)

	_, err = newExternalSink(&config.EventsConfig{Provider: "kafka"}, logger)
	require.Error(t, err)
}
