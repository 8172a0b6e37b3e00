package service

import (
	"context"
	"sort"

	"github.com/iliyamo/flight-reservation-system/internal/model"
	"github.com/iliyamo/flight-reservation-system/internal/repository"
)

// ReportService answers read-only aggregation queries over the stores. It
// holds no state of its own; every call scans the collections afresh.
type ReportService struct {
	flights      *repository.FlightStore
	reservations *repository.ReservationStore
}

// NewReportService constructs a ReportService over the given stores.
func NewReportService(flights *repository.FlightStore, reservations *repository.ReservationStore) *ReportService {
	return &ReportService{flights: flights, reservations: reservations}
}

// ConfirmedByFlight maps flight id to its number of confirmed reservations.
// Flights without a confirmed reservation do not appear.
func (s *ReportService) ConfirmedByFlight(ctx context.Context) (map[string]int, error) {
	all, err := s.reservations.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, r := range all {
		if r.Status == model.StatusConfirmed {
			counts[r.FlightID]++
		}
	}
	return counts, nil
}

// FreeSeatsByFlight maps every flight id to its number of unoccupied seats.
func (s *ReportService) FreeSeatsByFlight(ctx context.Context) (map[string]int, error) {
	flights, err := s.flights.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.ConfirmedByFlight(ctx)
	if err != nil {
		return nil, err
	}
	free := make(map[string]int, len(flights))
	for _, f := range flights {
		free[f.ID] = f.TotalSeats - counts[f.ID]
	}
	return free, nil
}

// RevenueByFlight maps flight id to the sum of amounts paid on its confirmed
// reservations. Cancelled reservations contribute nothing.
func (s *ReportService) RevenueByFlight(ctx context.Context) (map[string]float64, error) {
	all, err := s.reservations.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	revenue := make(map[string]float64)
	for _, r := range all {
		if r.Status == model.StatusConfirmed {
			revenue[r.FlightID] += r.AmountPaid
		}
	}
	return revenue, nil
}

// TopFlights returns up to limit flight ids ordered by confirmed-reservation
// count, descending. Ties keep the order in which the flights first appear in
// the reservation collection, so the ranking is deterministic.
func (s *ReportService) TopFlights(ctx context.Context, limit int) ([]string, error) {
	all, err := s.reservations.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	var order []string
	for _, r := range all {
		if r.Status != model.StatusConfirmed {
			continue
		}
		if _, seen := counts[r.FlightID]; !seen {
			order = append(order, r.FlightID)
		}
		counts[r.FlightID]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}
	return order, nil
}

// UserHistory returns the user's reservations, most recent first.
func (s *ReportService) UserHistory(ctx context.Context, userID string) ([]model.Reservation, error) {
	history, err := s.reservations.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})
	return history, nil
}
