package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/flight-reservation-system/internal/model"
)

func validFlight() model.Flight {
	return model.Flight{
		Origin:        "São Paulo",
		Destination:   "Salvador",
		DepartureTime: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
		Carrier:       "GOL",
		TotalSeats:    12,
		Price:         310.5,
	}
}

func TestCreateFlightAssignsID(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	created, err := e.flightSvc.Create(ctx, validFlight())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := e.flightSvc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateFlightValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	tests := []struct {
		name   string
		mutate func(*model.Flight)
	}{
		{"empty origin", func(f *model.Flight) { f.Origin = " " }},
		{"empty destination", func(f *model.Flight) { f.Destination = "" }},
		{"empty carrier", func(f *model.Flight) { f.Carrier = "" }},
		{"zero seats", func(f *model.Flight) { f.TotalSeats = 0 }},
		{"negative seats", func(f *model.Flight) { f.TotalSeats = -5 }},
		{"negative price", func(f *model.Flight) { f.Price = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFlight()
			tt.mutate(&f)
			_, err := e.flightSvc.Create(ctx, f)
			assert.ErrorIs(t, err, ErrInvalidFlight)
		})
	}
}

func TestUpdateFlight(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	f := e.addFlight(t, "F1", 12, 100)

	f.Price = 150
	require.NoError(t, e.flightSvc.Update(ctx, f))

	got, err := e.flightSvc.Get(ctx, "F1")
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.Price)

	ghost := validFlight()
	ghost.ID = "missing"
	assert.ErrorIs(t, e.flightSvc.Update(ctx, ghost), ErrFlightNotFound)
}

func TestDeleteFlightGuardedByConfirmedReservations(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.addUser(t, "U1", "u1@example.com")
	e.addFlight(t, "F1", 6, 100)

	id, err := e.booking.CreateReservation(ctx, "U1", "F1", "1A")
	require.NoError(t, err)

	assert.ErrorIs(t, e.flightSvc.Delete(ctx, "F1"), ErrFlightHasReservations)

	require.NoError(t, e.booking.CancelReservation(ctx, id, "U1"))
	require.NoError(t, e.flightSvc.Delete(ctx, "F1"))

	_, err = e.flightSvc.Get(ctx, "F1")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestDeleteFlightNotFound(t *testing.T) {
	e := newEnv(t)
	assert.ErrorIs(t, e.flightSvc.Delete(context.Background(), "missing"), ErrFlightNotFound)
}

func TestSearchFlights(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.addFlight(t, "F1", 6, 100)

	byOrigin, err := e.flightSvc.SearchByOrigin(ctx, "são paulo")
	require.NoError(t, err)
	assert.Len(t, byOrigin, 1)

	byDestination, err := e.flightSvc.SearchByDestination(ctx, "RIO DE JANEIRO")
	require.NoError(t, err)
	assert.Len(t, byDestination, 1)

	none, err := e.flightSvc.SearchByOrigin(ctx, "Curitiba")
	require.NoError(t, err)
	assert.Empty(t, none)
}
