package models

import "testing"

func TestCanTransition(t *testing.T) {
	for _, tc := range []struct {
		from, to string
		want     bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusPaid, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusPaid, true},
		{StatusConfirmed, StatusScheduled, false},

		// Terminal statuses admit nothing.
		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusPaid, false},
		{StatusPaid, StatusCompleted, false},

		{"bogus", StatusConfirmed, false},
		{StatusScheduled, "bogus", false},
	} {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsActiveStatus(t *testing.T) {
	active := map[string]bool{
		StatusScheduled: true,
		StatusConfirmed: true,
		StatusCancelled: false,
		StatusCompleted: false,
		StatusPaid:      false,
	}
	for status, want := range active {
		if got := IsActiveStatus(status); got != want {
			t.Errorf("IsActiveStatus(%q) = %v, want %v", status, got, want)
		}
		a := Appointment{Status: status}
		if got := a.IsActive(); got != want {
			t.Errorf("Appointment{Status: %q}.IsActive() = %v, want %v", status, got, want)
		}
	}
}
