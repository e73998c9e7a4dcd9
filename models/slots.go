package models

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar-date wire format for appointments.
	DateLayout = "2006-01-02"
	// TimeLayout is the time-of-day wire format for slots.
	TimeLayout = "15:04"
)

// SlotGrid is the fixed ordered sequence of bookable time-of-day values for
// one salon day. Slot times run from open through close inclusive at a fixed
// cadence; every appointment time must be drawn from it.
type SlotGrid struct {
	times []string
	index map[string]int
}

// NewSlotGrid builds the grid from open/close times ("15:04") and the slot
// interval in minutes.
func NewSlotGrid(open, close string, intervalMin int) (SlotGrid, error) {
	if intervalMin <= 0 {
		return SlotGrid{}, fmt.Errorf("invalid slot interval: %d", intervalMin)
	}
	start, err := time.Parse(TimeLayout, open)
	if err != nil {
		return SlotGrid{}, fmt.Errorf("invalid opening time %q: %w", open, err)
	}
	end, err := time.Parse(TimeLayout, close)
	if err != nil {
		return SlotGrid{}, fmt.Errorf("invalid closing time %q: %w", close, err)
	}
	if end.Before(start) {
		return SlotGrid{}, fmt.Errorf("closing time %q precedes opening time %q", close, open)
	}

	grid := SlotGrid{index: make(map[string]int)}
	step := time.Duration(intervalMin) * time.Minute
	for t := start; !t.After(end); t = t.Add(step) {
		v := t.Format(TimeLayout)
		grid.index[v] = len(grid.times)
		grid.times = append(grid.times, v)
	}
	return grid, nil
}

// Times returns the ordered slot times. The caller must not modify the slice.
func (g SlotGrid) Times() []string {
	return g.times
}

// Contains reports whether t is a valid slot time on the grid.
func (g SlotGrid) Contains(t string) bool {
	_, ok := g.index[t]
	return ok
}

// Size returns the number of slots per day.
func (g SlotGrid) Size() int {
	return len(g.times)
}
