package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/flight-reservation-system/internal/model"
)

func (c *CLI) adminFlightsMenu(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== MANAGE FLIGHTS ====")
	fmt.Fprintln(c.out, "1. Create flight")
	fmt.Fprintln(c.out, "2. Edit flight")
	fmt.Fprintln(c.out, "3. Delete flight")
	fmt.Fprintln(c.out, "4. List all flights")
	fmt.Fprintln(c.out, "0. Back")

	choice, err := c.readInt("Choice: ")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return c.createFlight(ctx)
	case 2:
		return c.editFlight(ctx)
	case 3:
		return c.deleteFlight(ctx)
	case 4:
		return c.listFlights(ctx)
	case 0:
		return nil
	default:
		fmt.Fprintln(c.out, "Invalid option.")
		return nil
	}
}

func (c *CLI) createFlight(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== CREATE FLIGHT ====")
	origin, err := c.readLine("Origin: ")
	if err != nil {
		return err
	}
	destination, err := c.readLine("Destination: ")
	if err != nil {
		return err
	}
	departureStr, err := c.readLine("Departure (dd/mm/yyyy hh:mm): ")
	if err != nil {
		return err
	}
	departure, perr := parseDeparture(departureStr)
	if perr != nil {
		fmt.Fprintln(c.out, "Invalid date/time, use dd/mm/yyyy hh:mm.")
		return nil
	}
	carrier, err := c.readLine("Carrier: ")
	if err != nil {
		return err
	}
	totalSeats, err := c.readInt("Total seats: ")
	if err != nil {
		return err
	}
	price, err := c.readFloat("Price: ")
	if err != nil {
		return err
	}

	f, err := c.flights.Create(ctx, model.Flight{
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure.UTC(),
		Carrier:       carrier,
		TotalSeats:    totalSeats,
		Price:         price,
	})
	if err != nil {
		c.report(err)
		return nil
	}
	c.log.Info("flight %s created by %s", f.ID, c.session.Email)
	fmt.Fprintf(c.out, "Flight created. ID: %s\n", f.ID)
	return nil
}

// editFlight prompts for new values; an empty answer keeps the current one.
func (c *CLI) editFlight(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== EDIT FLIGHT ====")
	if err := c.listFlights(ctx); err != nil {
		return err
	}
	id, err := c.readLine("Flight ID to edit: ")
	if err != nil {
		return err
	}
	f, err := c.flights.Get(ctx, id)
	if err != nil {
		c.report(err)
		return nil
	}

	origin, err := c.readLine(fmt.Sprintf("New origin (current: %s): ", f.Origin))
	if err != nil {
		return err
	}
	if origin != "" {
		f.Origin = origin
	}
	destination, err := c.readLine(fmt.Sprintf("New destination (current: %s): ", f.Destination))
	if err != nil {
		return err
	}
	if destination != "" {
		f.Destination = destination
	}
	carrier, err := c.readLine(fmt.Sprintf("New carrier (current: %s): ", f.Carrier))
	if err != nil {
		return err
	}
	if carrier != "" {
		f.Carrier = carrier
	}
	priceStr, err := c.readLine(fmt.Sprintf("New price (current: %.2f): ", f.Price))
	if err != nil {
		return err
	}
	if priceStr != "" {
		price, perr := strconv.ParseFloat(priceStr, 64)
		if perr != nil {
			fmt.Fprintln(c.out, "Invalid price, keeping current value.")
		} else {
			f.Price = price
		}
	}

	if err := c.flights.Update(ctx, f); err != nil {
		c.report(err)
		return nil
	}
	c.log.Info("flight %s edited by %s", f.ID, c.session.Email)
	fmt.Fprintln(c.out, "Flight updated.")
	return nil
}

func (c *CLI) deleteFlight(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== DELETE FLIGHT ====")
	if err := c.listFlights(ctx); err != nil {
		return err
	}
	id, err := c.readLine("Flight ID to delete: ")
	if err != nil {
		return err
	}
	confirm, err := c.readLine("Are you sure? (y/N): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(c.out, "Operation cancelled.")
		return nil
	}
	if err := c.flights.Delete(ctx, id); err != nil {
		c.report(err)
		return nil
	}
	c.log.Info("flight %s deleted by %s", id, c.session.Email)
	fmt.Fprintln(c.out, "Flight deleted.")
	return nil
}

func (c *CLI) adminReportsMenu(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== ADMINISTRATIVE REPORTS ====")
	fmt.Fprintln(c.out, "1. Confirmed reservations per flight")
	fmt.Fprintln(c.out, "2. Free seats per flight")
	fmt.Fprintln(c.out, "3. Revenue per flight")
	fmt.Fprintln(c.out, "4. Top 10 most booked flights")
	fmt.Fprintln(c.out, "0. Back")

	choice, err := c.readInt("Choice: ")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return c.confirmedReport(ctx)
	case 2:
		return c.freeSeatsReport(ctx)
	case 3:
		return c.revenueReport(ctx)
	case 4:
		return c.topFlightsReport(ctx, 10)
	case 0:
		return nil
	default:
		fmt.Fprintln(c.out, "Invalid option.")
		return nil
	}
}

func (c *CLI) confirmedReport(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== CONFIRMED RESERVATIONS PER FLIGHT ====")
	counts, err := c.reports.ConfirmedByFlight(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	c.forEachFlight(ctx, func(f model.Flight) {
		fmt.Fprintf(c.out, "%s -> %s (%s): %d reservations\n", f.Origin, f.Destination, f.Carrier, counts[f.ID])
	})
	return nil
}

func (c *CLI) freeSeatsReport(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== FREE SEATS PER FLIGHT ====")
	free, err := c.reports.FreeSeatsByFlight(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	c.forEachFlight(ctx, func(f model.Flight) {
		occupied := f.TotalSeats - free[f.ID]
		occupancy := float64(occupied) / float64(f.TotalSeats) * 100
		fmt.Fprintf(c.out, "%s -> %s: %d/%d free (%.1f%% occupancy)\n",
			f.Origin, f.Destination, free[f.ID], f.TotalSeats, occupancy)
	})
	return nil
}

func (c *CLI) revenueReport(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== REVENUE PER FLIGHT ====")
	revenue, err := c.reports.RevenueByFlight(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	var total float64
	c.forEachFlight(ctx, func(f model.Flight) {
		fmt.Fprintf(c.out, "%s -> %s (%s): R$ %.2f\n", f.Origin, f.Destination, f.Carrier, revenue[f.ID])
		total += revenue[f.ID]
	})
	fmt.Fprintf(c.out, "\nTOTAL REVENUE: R$ %.2f\n", total)
	return nil
}

func (c *CLI) forEachFlight(ctx context.Context, fn func(model.Flight)) {
	flights, err := c.flights.List(ctx)
	if err != nil {
		c.report(err)
		return
	}
	for _, f := range flights {
		fn(f)
	}
}
