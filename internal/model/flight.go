package model

import (
	"fmt"
	"strconv"
	"time"
)

// Flight represents one scheduled departure that can be booked seat by seat.
// The seat labels themselves are never stored; they are derived from
// TotalSeats by the seatmap package whenever needed.
//
// Fields:
//
//	ID            – opaque unique identifier.
//	Origin        – departure city or airport.
//	Destination   – arrival city or airport.
//	DepartureTime – scheduled departure (UTC).
//	Carrier       – operating airline.
//	TotalSeats    – cabin size; must be positive.
//	Price         – current fare charged on booking; non-negative.
type Flight struct {
	ID            string
	Origin        string
	Destination   string
	DepartureTime time.Time
	Carrier       string
	TotalSeats    int
	Price         float64
}

// MarshalRecord renders the flight as one line of the flights file:
// id;origin;destination;departureTime;carrier;totalSeats;price.
func (f Flight) MarshalRecord() (string, error) {
	return joinRecord(
		f.ID,
		f.Origin,
		f.Destination,
		formatTime(f.DepartureTime),
		f.Carrier,
		strconv.Itoa(f.TotalSeats),
		strconv.FormatFloat(f.Price, 'f', -1, 64),
	)
}

// UnmarshalFlightRecord parses one line of the flights file.
func UnmarshalFlightRecord(line string) (Flight, error) {
	parts, err := splitRecord(line, 7)
	if err != nil {
		return Flight{}, fmt.Errorf("flight record: %w", err)
	}
	departure, err := parseTime(parts[3])
	if err != nil {
		return Flight{}, fmt.Errorf("flight record: %w", err)
	}
	totalSeats, err := strconv.Atoi(parts[5])
	if err != nil {
		return Flight{}, fmt.Errorf("flight record: invalid seat count %q", parts[5])
	}
	price, err := strconv.ParseFloat(parts[6], 64)
	if err != nil {
		return Flight{}, fmt.Errorf("flight record: invalid price %q", parts[6])
	}
	return Flight{
		ID:            parts[0],
		Origin:        parts[1],
		Destination:   parts[2],
		DepartureTime: departure,
		Carrier:       parts[4],
		TotalSeats:    totalSeats,
		Price:         price,
	}, nil
}
