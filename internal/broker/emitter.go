package broker

import (
	"context"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
)

const defaultEmitTimeout = 2 * time.Second

// Sender is implemented by Publisher and NoopPublisher.
type Sender interface {
	Publish(ctx context.Context, event Event) error
}

// Emitter publishes change events on a best-effort basis: failures are logged and counted,
// never returned, because the change they describe is already committed.
type Emitter struct {
	sender  Sender
	log     *slog.Logger
	metrics *metrics.Metrics
	timeout time.Duration
	now     func() time.Time
}

func NewEmitter(sender Sender, log *slog.Logger, metrics *metrics.Metrics) *Emitter {
	return &Emitter{
		sender:  sender,
		log:     log.With(slog.String("division", "broker")),
		metrics: metrics,
		timeout: defaultEmitTimeout,
		now:     time.Now,
	}
}

// Emit publishes the event. A zero Timestamp is filled with the current time.
// The request context's cancellation is ignored so that a client disconnect does not drop the event.
func (e *Emitter) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = e.now().UTC()
	}

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	if err := e.sender.Publish(pctx, event); err != nil {
		e.metrics.EventsPublished.WithLabelValues("failure").Inc()
		e.log.WarnContext(ctx, "Failed to publish change event",
			"entity", event.Entity, "action", event.Action, "id", event.ID, sl.Err(err))
		return
	}

	e.metrics.EventsPublished.WithLabelValues("success").Inc()
	e.log.DebugContext(ctx, "Change event published", "entity", event.Entity, "action", event.Action, "id", event.ID)
}
