package booking

import "github.com/uvcaspaces/booking-portal/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// transitions lists the allowed next states. Cancelled and completed are
// terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}
