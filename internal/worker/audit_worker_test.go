package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/petcarex/console/internal/events"
	"github.com/petcarex/console/internal/observability"
)

func TestAuditWorker_CountsLifecycleEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	StartAuditWorker(dispatcher, zap.NewNop(), metrics)

	ctx := context.Background()
	publish := func(eventType events.EventType) {
		_ = dispatcher.Publish(ctx, events.Event{
			ID:        "evt-1",
			Type:      eventType,
			SessionID: "sid-1",
			Actor:     events.Actor{Subject: "KH001", Role: "customer"},
			Timestamp: time.Now(),
		})
	}

	publish(events.EventSignedIn)
	publish(events.EventSignedIn)
	publish(events.EventSessionRevoked)

	assert.Equal(t, int64(2), metrics.SessionEventCount(string(events.EventSignedIn)))
	assert.Equal(t, int64(1), metrics.SessionEventCount(string(events.EventSessionRevoked)))
	assert.Zero(t, metrics.SessionEventCount(string(events.EventSignedOut)))
}
