package audit

import (
	"go.uber.org/zap"

	"github.com/noursalon/salon-scheduler/internal/logger"
)

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	log    *zap.Logger
}

func NewDispatcher(auditLogger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: auditLogger,
		queue:  make(chan Event, 100),
		log:    logger.Get(),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Actor,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error("audit write failed", zap.Error(err))
		}
	}
}

// Dispatch never blocks the request path. When the queue is full the event
// is dropped; auditing must not break the API.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
