package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/flight-reservation-system/internal/model"
	"github.com/iliyamo/flight-reservation-system/internal/repository"
)

// env wires file-backed stores in a temporary directory to every service, so
// service tests exercise the same persistence path as production.
type env struct {
	users        *repository.UserStore
	flights      *repository.FlightStore
	reservations *repository.ReservationStore
	auth         *AuthService
	booking      *BookingService
	flightSvc    *FlightService
	reports      *ReportService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	users, err := repository.NewUserStore(dir)
	require.NoError(t, err)
	flights, err := repository.NewFlightStore(dir)
	require.NoError(t, err)
	reservations, err := repository.NewReservationStore(dir)
	require.NoError(t, err)
	return &env{
		users:        users,
		flights:      flights,
		reservations: reservations,
		auth:         NewAuthService(users, "test-secret", time.Hour, bcrypt.MinCost),
		booking:      NewBookingService(users, flights, reservations),
		flightSvc:    NewFlightService(flights, reservations),
		reports:      NewReportService(flights, reservations),
	}
}

func (e *env) addUser(t *testing.T, id, email string) model.User {
	t.Helper()
	u := model.User{
		ID:           id,
		Name:         "User " + id,
		Email:        email,
		PasswordHash: "$2a$04$abcdefghijklmnopqrstuv",
		Role:         model.RoleCustomer,
		CreatedAt:    time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	require.NoError(t, e.users.Save(context.Background(), u))
	return u
}

func (e *env) addFlight(t *testing.T, id string, totalSeats int, price float64) model.Flight {
	t.Helper()
	f := model.Flight{
		ID:            id,
		Origin:        "São Paulo",
		Destination:   "Rio de Janeiro",
		DepartureTime: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Carrier:       "LATAM",
		TotalSeats:    totalSeats,
		Price:         price,
	}
	require.NoError(t, e.flights.Save(context.Background(), f))
	return f
}

func (e *env) addReservation(t *testing.T, id, userID, flightID, seat string, status model.Status, createdAt time.Time, amount float64) model.Reservation {
	t.Helper()
	r := model.Reservation{
		ID:         id,
		UserID:     userID,
		FlightID:   flightID,
		Seat:       seat,
		Status:     status,
		CreatedAt:  createdAt,
		AmountPaid: amount,
	}
	require.NoError(t, e.reservations.Save(context.Background(), r))
	return r
}
