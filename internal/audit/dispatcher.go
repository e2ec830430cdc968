package audit

import "log"

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Writer persists a single audit entry.
type Writer interface {
	Log(userID *uint, action, entity string, entityID *uint, metadata any) error
}

// Dispatcher writes audit entries off the request path. A full queue drops
// the event rather than blocking or failing the API call.
type Dispatcher struct {
	logger Writer
	queue  chan Event
}

func NewDispatcher(logger Writer) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
