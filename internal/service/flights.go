package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/flight-reservation-system/internal/model"
	"github.com/iliyamo/flight-reservation-system/internal/repository"
)

// FlightService manages the flight catalogue. Creation and edits are admin
// operations; the presentation layer is responsible for checking the caller's
// role before invoking them.
type FlightService struct {
	flights      *repository.FlightStore
	reservations *repository.ReservationStore
}

// NewFlightService constructs a FlightService over the given stores.
func NewFlightService(flights *repository.FlightStore, reservations *repository.ReservationStore) *FlightService {
	return &FlightService{flights: flights, reservations: reservations}
}

// Create validates and persists a new flight, assigning it a fresh id.
func (s *FlightService) Create(ctx context.Context, f model.Flight) (model.Flight, error) {
	if err := validateFlight(f); err != nil {
		return model.Flight{}, err
	}
	f.ID = uuid.NewString()
	if err := s.flights.Save(ctx, f); err != nil {
		return model.Flight{}, err
	}
	return f, nil
}

// Update replaces an existing flight's attributes, or fails with
// ErrFlightNotFound.
func (s *FlightService) Update(ctx context.Context, f model.Flight) error {
	if err := validateFlight(f); err != nil {
		return err
	}
	err := s.flights.Update(ctx, f)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFlightNotFound
	}
	return err
}

// Delete removes a flight from the catalogue. A flight with any confirmed
// reservation cannot be deleted; cancelled reservations do not block it.
// The guard and the removal are separate store calls, so a booking landing
// between them can leave a confirmed reservation on a removed flight; the
// presentation layer renders such reservations without their route.
func (s *FlightService) Delete(ctx context.Context, id string) error {
	onFlight, err := s.reservations.FindByFlight(ctx, id)
	if err != nil {
		return err
	}
	for _, r := range onFlight {
		if r.Status == model.StatusConfirmed {
			return ErrFlightHasReservations
		}
	}
	err = s.flights.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFlightNotFound
	}
	return err
}

// Get returns the flight with the given id, or ErrFlightNotFound.
func (s *FlightService) Get(ctx context.Context, id string) (model.Flight, error) {
	f, err := s.flights.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Flight{}, ErrFlightNotFound
	}
	return f, err
}

// List returns the whole catalogue in file order.
func (s *FlightService) List(ctx context.Context) ([]model.Flight, error) {
	return s.flights.ListAll(ctx)
}

// SearchByOrigin returns the flights departing from origin.
func (s *FlightService) SearchByOrigin(ctx context.Context, origin string) ([]model.Flight, error) {
	return s.flights.FindByOrigin(ctx, origin)
}

// SearchByDestination returns the flights arriving at destination.
func (s *FlightService) SearchByDestination(ctx context.Context, destination string) ([]model.Flight, error) {
	return s.flights.FindByDestination(ctx, destination)
}

func validateFlight(f model.Flight) error {
	if strings.TrimSpace(f.Origin) == "" || strings.TrimSpace(f.Destination) == "" {
		return fmt.Errorf("%w: origin and destination are required", ErrInvalidFlight)
	}
	if strings.TrimSpace(f.Carrier) == "" {
		return fmt.Errorf("%w: carrier is required", ErrInvalidFlight)
	}
	if f.TotalSeats < 1 {
		return fmt.Errorf("%w: total seats must be positive", ErrInvalidFlight)
	}
	if f.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidFlight)
	}
	return nil
}
