package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iliyamo/flight-reservation-system/internal/model"
)

const timeLayout = "02/01/2006 15:04"

func (c *CLI) listFlights(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== FLIGHTS ====")
	flights, err := c.flights.List(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(flights) == 0 {
		fmt.Fprintln(c.out, "No flights available.")
		return nil
	}
	free, err := c.reports.FreeSeatsByFlight(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	for _, f := range flights {
		fmt.Fprintf(c.out, "ID: %s | %s -> %s | %s | %s | Seats: %d/%d | R$ %.2f\n",
			f.ID, f.Origin, f.Destination, f.DepartureTime.Local().Format(timeLayout),
			f.Carrier, free[f.ID], f.TotalSeats, f.Price)
	}
	return nil
}

func (c *CLI) bookSeat(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== BOOK A SEAT ====")
	if err := c.listFlights(ctx); err != nil {
		return err
	}
	flightID, err := c.readLine("Flight ID: ")
	if err != nil {
		return err
	}
	free, err := c.booking.AvailableSeats(ctx, flightID)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(free) == 0 {
		fmt.Fprintln(c.out, "Flight is full.")
		return nil
	}
	fmt.Fprintln(c.out, "Available seats:")
	for i, seat := range free {
		fmt.Fprintf(c.out, "%-4s", seat)
		if (i+1)%10 == 0 {
			fmt.Fprintln(c.out)
		}
	}
	fmt.Fprintln(c.out)

	seat, err := c.readLine("Seat: ")
	if err != nil {
		return err
	}
	id, err := c.booking.CreateReservation(ctx, c.session.UserID, flightID, seat)
	if err != nil {
		c.report(err)
		return nil
	}
	c.log.Info("reservation %s created by %s (flight %s, seat %s)", id, c.session.Email, flightID, seat)
	fmt.Fprintf(c.out, "Reservation confirmed. ID: %s\n", id)
	return nil
}

func (c *CLI) myReservations(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== MY RESERVATIONS ====")
	reservations, err := c.booking.ReservationsForUser(ctx, c.session.UserID)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(reservations) == 0 {
		fmt.Fprintln(c.out, "You have no reservations.")
		return nil
	}
	c.printReservations(ctx, reservations)
	return nil
}

func (c *CLI) cancelReservation(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== CANCEL A RESERVATION ====")
	if err := c.myReservations(ctx); err != nil {
		return err
	}
	id, err := c.readLine("Reservation ID to cancel: ")
	if err != nil {
		return err
	}
	if err := c.booking.CancelReservation(ctx, id, c.session.UserID); err != nil {
		c.report(err)
		return nil
	}
	c.log.Info("reservation %s cancelled by %s", id, c.session.Email)
	fmt.Fprintln(c.out, "Reservation cancelled.")
	return nil
}

func (c *CLI) reportsMenu(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== REPORTS ====")
	fmt.Fprintln(c.out, "1. My reservation history")
	fmt.Fprintln(c.out, "2. Most booked flights")
	fmt.Fprintln(c.out, "0. Back")

	choice, err := c.readInt("Choice: ")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return c.historyReport(ctx)
	case 2:
		return c.topFlightsReport(ctx, 5)
	case 0:
		return nil
	default:
		fmt.Fprintln(c.out, "Invalid option.")
		return nil
	}
}

func (c *CLI) historyReport(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== MY HISTORY ====")
	history, err := c.reports.UserHistory(ctx, c.session.UserID)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(history) == 0 {
		fmt.Fprintln(c.out, "No reservations found.")
		return nil
	}
	c.printReservations(ctx, history)
	return nil
}

func (c *CLI) topFlightsReport(ctx context.Context, limit int) error {
	fmt.Fprintf(c.out, "\n==== MOST BOOKED FLIGHTS (TOP %d) ====\n", limit)
	top, err := c.reports.TopFlights(ctx, limit)
	if err != nil {
		c.report(err)
		return nil
	}
	counts, err := c.reports.ConfirmedByFlight(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	for i, flightID := range top {
		f, err := c.flights.Get(ctx, flightID)
		if err != nil {
			continue
		}
		fmt.Fprintf(c.out, "%2d. %s -> %s (%s) - %d reservations\n",
			i+1, f.Origin, f.Destination, f.Carrier, counts[flightID])
	}
	return nil
}

// printReservations renders reservations with their flight's route attached.
// A reservation whose flight is gone is still shown by id.
func (c *CLI) printReservations(ctx context.Context, reservations []model.Reservation) {
	for _, r := range reservations {
		route := "(flight no longer in catalogue)"
		departure := ""
		if f, err := c.flights.Get(ctx, r.FlightID); err == nil {
			route = fmt.Sprintf("%s -> %s", f.Origin, f.Destination)
			departure = f.DepartureTime.Local().Format(timeLayout)
		}
		fmt.Fprintf(c.out, "ID: %s | %s | %s | Seat: %s | Status: %s | Booked: %s | R$ %.2f\n",
			r.ID, route, departure, r.Seat, r.Status,
			r.CreatedAt.Local().Format(timeLayout), r.AmountPaid)
	}
}

// parseDeparture reads a departure timestamp in the menu's local format.
func parseDeparture(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.Local)
}
