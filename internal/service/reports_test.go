package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/flight-reservation-system/internal/model"
)

// seedReports builds a small dataset with controlled timestamps:
// F1 has two confirmed reservations, F2 two, F3 one confirmed and one
// cancelled. U1 owns three of them.
func seedReports(t *testing.T, e *env) {
	t.Helper()
	e.addUser(t, "U1", "u1@example.com")
	e.addUser(t, "U2", "u2@example.com")
	e.addFlight(t, "F1", 6, 100)
	e.addFlight(t, "F2", 6, 50)
	e.addFlight(t, "F3", 6, 80)

	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	e.addReservation(t, "R1", "U1", "F1", "1A", model.StatusConfirmed, base, 100)
	e.addReservation(t, "R2", "U2", "F1", "1B", model.StatusConfirmed, base.Add(time.Hour), 100)
	e.addReservation(t, "R3", "U1", "F2", "1A", model.StatusConfirmed, base.Add(2*time.Hour), 50)
	e.addReservation(t, "R4", "U2", "F2", "1B", model.StatusConfirmed, base.Add(3*time.Hour), 50)
	e.addReservation(t, "R5", "U1", "F3", "1A", model.StatusConfirmed, base.Add(4*time.Hour), 80)
	e.addReservation(t, "R6", "U2", "F3", "1B", model.StatusCancelled, base.Add(5*time.Hour), 80)
}

func TestConfirmedByFlight(t *testing.T) {
	e := newEnv(t)
	seedReports(t, e)

	counts, err := e.reports.ConfirmedByFlight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"F1": 2, "F2": 2, "F3": 1}, counts)
}

func TestFreeSeatsByFlight(t *testing.T) {
	e := newEnv(t)
	seedReports(t, e)

	free, err := e.reports.FreeSeatsByFlight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"F1": 4, "F2": 4, "F3": 5}, free)
}

func TestFreeSeatsIncludesUnbookedFlights(t *testing.T) {
	e := newEnv(t)
	e.addFlight(t, "F9", 18, 100)

	free, err := e.reports.FreeSeatsByFlight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"F9": 18}, free)
}

func TestRevenueByFlight(t *testing.T) {
	e := newEnv(t)
	seedReports(t, e)

	revenue, err := e.reports.RevenueByFlight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"F1": 200, "F2": 100, "F3": 80}, revenue)
}

func TestTopFlights(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seedReports(t, e)

	// F1 and F2 tie at two confirmed each; F1 appears first in the
	// collection, so the tie keeps it first.
	top, err := e.reports.TopFlights(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"F1", "F2", "F3"}, top)

	top, err = e.reports.TopFlights(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"F1", "F2"}, top)

	none, err := e.reports.TopFlights(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserHistoryMostRecentFirst(t *testing.T) {
	e := newEnv(t)
	seedReports(t, e)

	history, err := e.reports.UserHistory(context.Background(), "U1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "R5", history[0].ID)
	assert.Equal(t, "R3", history[1].ID)
	assert.Equal(t, "R1", history[2].ID)
}
