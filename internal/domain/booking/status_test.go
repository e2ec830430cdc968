package booking

import (
	"testing"

	"github.com/uvcaspaces/booking-portal/internal/httperr"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false", s)
		}
	}
	for _, s := range []Status{"", "done", "PENDING", "approved"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tt := range allowed {
		if err := CanTransition(tt.from, tt.to); err != nil {
			t.Errorf("CanTransition(%q, %q) = %v, want nil", tt.from, tt.to, err)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusCompleted, StatusPending},
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusPending},
	}
	for _, tt := range denied {
		err := CanTransition(tt.from, tt.to)
		if err == nil {
			t.Errorf("CanTransition(%q, %q) = nil, want error", tt.from, tt.to)
			continue
		}
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("CanTransition(%q, %q) error is not invalid_state: %v", tt.from, tt.to, err)
		}
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	err := CanTransition(StatusPending, "approved")
	if err == nil {
		t.Fatal("expected error for unknown target status")
	}
	if code := httperr.BusinessCode(err); code != "invalid_status" {
		t.Errorf("code = %q, want invalid_status", code)
	}
}

func TestCanTransitionSameStatus(t *testing.T) {
	if err := CanTransition(StatusPending, StatusPending); err == nil {
		t.Error("expected error when target equals current status")
	}
}
