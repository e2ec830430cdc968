package authz

import "testing"

func TestPolicy(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		owner    bool
		want     bool
	}{
		{"anonymous lists services", "", "service", "list", false, true},
		{"anonymous submits contact", "", "contact", "submit", false, true},
		{"anonymous cannot create booking", "", "booking", "create", false, false},

		{"user creates booking", "user", "booking", "create", false, true},
		{"user lists own bookings", "user", "booking", "list_mine", false, true},
		{"user cannot list all bookings", "user", "booking", "list_all", false, false},
		{"admin lists all bookings", "admin", "booking", "list_all", false, true},

		{"owner reads booking", "user", "booking", "get", true, true},
		{"non-owner cannot read booking", "user", "booking", "get", false, false},
		{"admin reads any booking", "admin", "booking", "get", false, true},
		{"owner deletes booking", "user", "booking", "delete", true, true},

		{"user cannot mutate services", "user", "service", "delete", false, false},
		{"admin mutates services", "admin", "service", "create", false, true},

		{"user cannot list inquiries", "user", "contact", "list", false, false},
		{"admin updates inquiry status", "admin", "contact", "update_status", false, true},

		{"user cannot list users", "user", "user", "list", false, false},
		{"admin lists users", "admin", "user", "list", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Can(tt.role, tt.resource, tt.action, tt.owner); got != tt.want {
				t.Errorf("Can(%q, %q, %q, %v) = %v, want %v",
					tt.role, tt.resource, tt.action, tt.owner, got, tt.want)
			}
		})
	}
}

func TestUnknownPairFailsClosed(t *testing.T) {
	if Can("user", "no_such_resource", "fly", true) {
		t.Error("unknown resource/action allowed for non-admin")
	}
	if !Can("admin", "no_such_resource", "fly", false) {
		t.Error("unknown resource/action denied for admin")
	}
}
