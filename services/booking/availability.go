package booking

import (
	"context"
	"sort"

	appointmentRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/appointment"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"

	"go.uber.org/zap"
)

// BookedSlots returns the occupied slot times for a technician, grouped by
// date, over the inclusive date range. Only active appointments (scheduled
// or confirmed) occupy slots. Each call fully replaces any prior result: the
// returned map is freshly built and carries no state.
//
// On query failure it fails open to an empty mapping. That is safe because
// this result only paints the UI; every commit path re-validates against the
// store, whose uniqueness constraint is the actual gate.
func (s *DefaultBookingService) BookedSlots(ctx context.Context, technicianID, dateFrom, dateTo string) map[string][]string {
	booked := make(map[string][]string)
	if technicianID == "" {
		return booked
	}

	appts, err := s.Repo.Query(ctx, appointmentRepo.Filter{
		TechnicianID: technicianID,
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		Statuses:     models.ActiveStatuses,
	})
	if err != nil {
		utils.GetLogger().Warn("BookedSlots: query failed, treating range as open",
			zap.String("technicianID", technicianID),
			zap.String("from", dateFrom), zap.String("to", dateTo),
			zap.Error(err))
		return booked
	}

	for _, a := range appts {
		booked[a.Date] = append(booked[a.Date], a.Time)
	}
	for date := range booked {
		sort.Strings(booked[date])
	}
	return booked
}

// FullyBookedDates returns the dates whose occupied set covers the whole
// slot grid, used to disable calendar day affordances.
func (s *DefaultBookingService) FullyBookedDates(booked map[string][]string) []string {
	var full []string
	for date, times := range booked {
		if len(uniqueTimes(times)) >= s.Grid.Size() {
			full = append(full, date)
		}
	}
	sort.Strings(full)
	return full
}

func uniqueTimes(times []string) []string {
	seen := make(map[string]struct{}, len(times))
	var out []string
	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// slotOccupied reports whether the given time appears in the freshly fetched
// occupied set for the technician/date, optionally ignoring one appointment
// (so a reschedule never conflicts with itself). This is the advisory check:
// cheap and race-prone, always backed by the store constraint.
func (s *DefaultBookingService) slotOccupied(ctx context.Context, technicianID, date, timeOfDay, excludeID string) bool {
	appts, err := s.Repo.Query(ctx, appointmentRepo.Filter{
		TechnicianID: technicianID,
		DateFrom:     date,
		DateTo:       date,
		Statuses:     models.ActiveStatuses,
		ExcludeID:    excludeID,
	})
	if err != nil {
		// Fail open; the constrained write decides.
		utils.GetLogger().Warn("slotOccupied: advisory re-check failed",
			zap.String("technicianID", technicianID), zap.String("date", date), zap.Error(err))
		return false
	}
	for _, a := range appts {
		if a.Time == timeOfDay {
			return true
		}
	}
	return false
}
