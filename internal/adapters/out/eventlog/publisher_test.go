package eventlog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/adapters/out/eventlog"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := eventlog.NewLogPublisher(logger)
	id := kernel.NewUUID()
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	publisher.Publish(t.Context(), delivery.NewShippingStartedEvent(id, delivery.Uklon, "pizza-1", 6*time.Second, at))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shipping_started", line["msg"])
	assert.Equal(t, id.String(), line["tracking_id"])
	assert.Equal(t, "uklon", line["provider"])
	assert.Equal(t, "pizza-1", line["name"])
	assert.Equal(t, "events", line["component"])
	assert.InDelta(t, float64(6*time.Second), line["delay"], 0)
}

func TestLogPublisher_OrderScheduled(t *testing.T) {
	var buf bytes.Buffer
	publisher := eventlog.NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))
	dueAt := time.Date(2026, 10, 19, 12, 0, 2, 0, time.UTC)

	publisher.Publish(t.Context(), delivery.NewOrderScheduledEvent("burger", dueAt, dueAt.Add(-2*time.Second)))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order_scheduled", line["msg"])
	assert.Equal(t, "burger", line["name"])
	assert.NotContains(t, line, "tracking_id")
}

func TestFanout_Publish(t *testing.T) {
	first, second := eventlog.NewRecorder(), eventlog.NewRecorder()
	fanout := eventlog.Fanout{first, second}
	id := kernel.NewUUID()

	fanout.Publish(t.Context(), delivery.NewOrderRemovedEvent(id, delivery.Uber, time.Now()))

	assert.Equal(t, 1, first.Count(delivery.OrderRemoved))
	assert.Equal(t, 1, second.Count(delivery.OrderRemoved))
}

func TestRecorder_History(t *testing.T) {
	rec := eventlog.NewRecorder()
	id, other := kernel.NewUUID(), kernel.NewUUID()
	now := time.Now()

	rec.Publish(t.Context(), delivery.NewShippingStartedEvent(id, delivery.Uber, "a", time.Second, now))
	rec.Publish(t.Context(), delivery.NewShippingStartedEvent(other, delivery.Uber, "b", time.Second, now))
	rec.Publish(t.Context(), delivery.NewShippingCompletedEvent(id, delivery.Uber, now))

	assert.Equal(t, []delivery.EventName{delivery.ShippingStarted, delivery.ShippingCompleted}, rec.History(id))
	assert.Len(t, rec.Events(), 3)
	assert.Equal(t, 2, rec.Count(delivery.ShippingStarted))
}
