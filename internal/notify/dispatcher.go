package notify

import "log"

// Dispatcher keeps mail delivery off the request path: the contact-form
// response never waits on the SMTP provider, and a full queue drops the
// notification rather than the inquiry.
type Dispatcher struct {
	sender Sender
	queue  chan Notification
}

// NewDispatcher accepts a nil sender, in which case dispatching is a no-op.
func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Notification, 100),
	}

	if sender != nil {
		go d.worker()
	} else {
		log.Println("mail not configured, inquiry notifications disabled")
	}
	return d
}

func (d *Dispatcher) worker() {
	for n := range d.queue {
		if err := d.sender.Send(n); err != nil {
			log.Println("notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(n Notification) {
	if d.sender == nil {
		return
	}
	select {
	case d.queue <- n:
	default:
		log.Println("notification queue full, dropping event")
	}
}
