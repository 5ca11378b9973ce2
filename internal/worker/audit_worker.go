package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/petcarex/console/internal/events"
	"github.com/petcarex/console/internal/observability"
)

// StartAuditWorker subscribes an audit trail to session lifecycle events.
// Every sign-in, sign-out, revocation and expiry leaves a structured log
// entry and a counter.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) {
	if dispatcher == nil {
		return
	}

	dispatcher.Subscribe(func(_ context.Context, event events.Event) error {
		metrics.RecordSessionEvent(string(event.Type))
		logger.Info("session audit",
			zap.String("event_id", event.ID),
			zap.String("event", string(event.Type)),
			zap.String("session_id", event.SessionID),
			zap.String("subject", event.Actor.Subject),
			zap.String("role", string(event.Actor.Role)),
			zap.String("branch", event.Actor.BranchCode),
		)
		return nil
	}, events.SessionLifecycle...)
}
