package repository

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iliyamo/flight-reservation-system/internal/model"
)

type flightCodec struct{}

func (flightCodec) Marshal(f model.Flight) (string, error) { return f.MarshalRecord() }
func (flightCodec) Unmarshal(line string) (model.Flight, error) {
	return model.UnmarshalFlightRecord(line)
}
func (flightCodec) ID(f model.Flight) string { return f.ID }

// FlightStore persists flights in flights.txt.
type FlightStore struct {
	*FileStore[model.Flight]
}

// NewFlightStore opens the flight collection under dataDir.
func NewFlightStore(dataDir string) (*FlightStore, error) {
	fs, err := NewFileStore[model.Flight](filepath.Join(dataDir, "flights.txt"), flightCodec{})
	if err != nil {
		return nil, err
	}
	return &FlightStore{fs}, nil
}

// FindByOrigin returns the flights departing from origin, case-insensitively.
func (s *FlightStore) FindByOrigin(ctx context.Context, origin string) ([]model.Flight, error) {
	return s.Find(ctx, func(f model.Flight) bool { return strings.EqualFold(f.Origin, origin) })
}

// FindByDestination returns the flights arriving at destination,
// case-insensitively.
func (s *FlightStore) FindByDestination(ctx context.Context, destination string) ([]model.Flight, error) {
	return s.Find(ctx, func(f model.Flight) bool { return strings.EqualFold(f.Destination, destination) })
}
