package model

import (
	"fmt"
	"strconv"
	"time"
)

// Status is the lifecycle state of a reservation. Bookings are confirmed
// immediately, so CONFIRMADA is the initial state; CANCELADA is terminal and
// never left. PENDENTE is accepted when reading the reservations file but is
// never produced by this system.
type Status string

const (
	StatusConfirmed Status = "CONFIRMADA"
	StatusCancelled Status = "CANCELADA"
	StatusPending   Status = "PENDENTE"
)

// ParseStatus maps a persisted status token back to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusCancelled, StatusPending:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Reservation records that a user holds one seat on one flight.
//
// Fields:
//
//	ID         – opaque unique identifier.
//	UserID     – owner; references an existing user at creation time.
//	FlightID   – booked flight; references an existing flight at creation time.
//	Seat       – seat label, e.g. "12C"; always within the flight's seat map.
//	Status     – CONFIRMADA, CANCELADA or PENDENTE.
//	CreatedAt  – booking timestamp (UTC).
//	AmountPaid – fare captured from the flight at booking time.
type Reservation struct {
	ID         string
	UserID     string
	FlightID   string
	Seat       string
	Status     Status
	CreatedAt  time.Time
	AmountPaid float64
}

// MarshalRecord renders the reservation as one line of the reservations file:
// id;userId;flightId;seat;status;createdAt;amountPaid.
func (r Reservation) MarshalRecord() (string, error) {
	return joinRecord(
		r.ID,
		r.UserID,
		r.FlightID,
		r.Seat,
		string(r.Status),
		formatTime(r.CreatedAt),
		strconv.FormatFloat(r.AmountPaid, 'f', -1, 64),
	)
}

// UnmarshalReservationRecord parses one line of the reservations file.
func UnmarshalReservationRecord(line string) (Reservation, error) {
	parts, err := splitRecord(line, 7)
	if err != nil {
		return Reservation{}, fmt.Errorf("reservation record: %w", err)
	}
	status, err := ParseStatus(parts[4])
	if err != nil {
		return Reservation{}, fmt.Errorf("reservation record: %w", err)
	}
	createdAt, err := parseTime(parts[5])
	if err != nil {
		return Reservation{}, fmt.Errorf("reservation record: %w", err)
	}
	amount, err := strconv.ParseFloat(parts[6], 64)
	if err != nil {
		return Reservation{}, fmt.Errorf("reservation record: invalid amount %q", parts[6])
	}
	return Reservation{
		ID:         parts[0],
		UserID:     parts[1],
		FlightID:   parts[2],
		Seat:       parts[3],
		Status:     status,
		CreatedAt:  createdAt,
		AmountPaid: amount,
	}, nil
}
