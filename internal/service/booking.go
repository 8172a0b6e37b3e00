package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/flight-reservation-system/internal/model"
	"github.com/iliyamo/flight-reservation-system/internal/repository"
	"github.com/iliyamo/flight-reservation-system/internal/seatmap"
)

// BookingService creates and cancels reservations. At any point in time the
// confirmed reservations on a flight hold pairwise-distinct seats; that
// invariant is what the per-flight locking below protects.
type BookingService struct {
	users        *repository.UserStore
	flights      *repository.FlightStore
	reservations *repository.ReservationStore

	mu          sync.Mutex
	flightLocks map[string]*sync.Mutex
}

// NewBookingService constructs a BookingService over the given stores.
func NewBookingService(users *repository.UserStore, flights *repository.FlightStore, reservations *repository.ReservationStore) *BookingService {
	return &BookingService{
		users:        users,
		flights:      flights,
		reservations: reservations,
		flightLocks:  make(map[string]*sync.Mutex),
	}
}

// flightLock returns the mutex serializing bookings on one flight. The
// seat-free check and the reservation write are two separate store calls, so
// the store's own lock cannot stop two bookings racing for the same seat;
// holding this lock across the whole check-and-write sequence does. Locks are
// never removed: there is one pointer per flight ever booked, which is
// negligible at this scale.
func (s *BookingService) flightLock(flightID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.flightLocks[flightID]
	if !ok {
		l = &sync.Mutex{}
		s.flightLocks[flightID] = l
	}
	return l
}

// CreateReservation books seat on flightID for userID at the flight's current
// price and returns the new reservation's id. It fails with ErrFlightNotFound,
// ErrUserNotFound, ErrSeatInvalid or ErrSeatTaken.
func (s *BookingService) CreateReservation(ctx context.Context, userID, flightID, seat string) (string, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrFlightNotFound
	}
	if err != nil {
		return "", err
	}
	if _, err := s.users.GetByID(ctx, userID); errors.Is(err, repository.ErrNotFound) {
		return "", ErrUserNotFound
	} else if err != nil {
		return "", err
	}

	lock := s.flightLock(flightID)
	lock.Lock()
	defer lock.Unlock()

	if !seatmap.Contains(flight.TotalSeats, seat) {
		return "", ErrSeatInvalid
	}
	taken, err := s.confirmedSeats(ctx, flightID)
	if err != nil {
		return "", err
	}
	if _, occupied := taken[seat]; occupied {
		return "", ErrSeatTaken
	}

	res := model.Reservation{
		ID:         uuid.NewString(),
		UserID:     userID,
		FlightID:   flightID,
		Seat:       seat,
		Status:     model.StatusConfirmed,
		CreatedAt:  time.Now().UTC(),
		AmountPaid: flight.Price,
	}
	if err := s.reservations.Save(ctx, res); err != nil {
		return "", err
	}
	return res.ID, nil
}

// CancelReservation flips a reservation to CANCELADA, freeing its seat
// immediately. Only the owner may cancel; cancelling twice fails with
// ErrAlreadyCancelled. No per-flight lock is needed here: the status flip is
// a single atomic store update and cancelling can only widen availability.
func (s *BookingService) CancelReservation(ctx context.Context, reservationID, requestingUserID string) error {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrReservationNotFound
	}
	if err != nil {
		return err
	}
	if res.UserID != requestingUserID {
		return ErrForbidden
	}
	if res.Status == model.StatusCancelled {
		return ErrAlreadyCancelled
	}
	res.Status = model.StatusCancelled
	return s.reservations.Update(ctx, res)
}

// AvailableSeats returns the free seats on flightID in seat-map order, or
// ErrFlightNotFound.
func (s *BookingService) AvailableSeats(ctx context.Context, flightID string) ([]string, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	taken, err := s.confirmedSeats(ctx, flightID)
	if err != nil {
		return nil, err
	}
	var free []string
	for _, seat := range seatmap.Generate(flight.TotalSeats) {
		if _, occupied := taken[seat]; !occupied {
			free = append(free, seat)
		}
	}
	return free, nil
}

// ReservationsForUser returns every reservation owned by userID, in no
// particular order.
func (s *BookingService) ReservationsForUser(ctx context.Context, userID string) ([]model.Reservation, error) {
	return s.reservations.FindByUser(ctx, userID)
}

// confirmedSeats returns the set of seats held by confirmed reservations on
// flightID.
func (s *BookingService) confirmedSeats(ctx context.Context, flightID string) (map[string]struct{}, error) {
	onFlight, err := s.reservations.FindByFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]struct{}, len(onFlight))
	for _, r := range onFlight {
		if r.Status == model.StatusConfirmed {
			taken[r.Seat] = struct{}{}
		}
	}
	return taken, nil
}
