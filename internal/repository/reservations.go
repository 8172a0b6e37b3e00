package repository

import (
	"context"
	"path/filepath"

	"github.com/iliyamo/flight-reservation-system/internal/model"
)

type reservationCodec struct{}

func (reservationCodec) Marshal(r model.Reservation) (string, error) { return r.MarshalRecord() }
func (reservationCodec) Unmarshal(line string) (model.Reservation, error) {
	return model.UnmarshalReservationRecord(line)
}
func (reservationCodec) ID(r model.Reservation) string { return r.ID }

// ReservationStore persists reservations in reservations.txt.
type ReservationStore struct {
	*FileStore[model.Reservation]
}

// NewReservationStore opens the reservation collection under dataDir.
func NewReservationStore(dataDir string) (*ReservationStore, error) {
	fs, err := NewFileStore[model.Reservation](filepath.Join(dataDir, "reservations.txt"), reservationCodec{})
	if err != nil {
		return nil, err
	}
	return &ReservationStore{fs}, nil
}

// FindByUser returns every reservation owned by userID, in file order.
func (s *ReservationStore) FindByUser(ctx context.Context, userID string) ([]model.Reservation, error) {
	return s.Find(ctx, func(r model.Reservation) bool { return r.UserID == userID })
}

// FindByFlight returns every reservation on flightID, in file order.
func (s *ReservationStore) FindByFlight(ctx context.Context, flightID string) ([]model.Reservation, error) {
	return s.Find(ctx, func(r model.Reservation) bool { return r.FlightID == flightID })
}
