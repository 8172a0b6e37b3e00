// Package seed bootstraps the default admin account and, on demand, a small
// set of sample users and flights for local exploration.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/flight-reservation-system/internal/model"
	"github.com/iliyamo/flight-reservation-system/internal/service"
)

// Default admin credentials, created on first start so the catalogue can be
// managed before any other account exists.
const (
	AdminName     = "Administrator"
	AdminEmail    = "admin@sistema.com"
	AdminPassword = "admin123"
)

// EnsureAdmin registers the default admin when no account uses its email.
// It reports whether the account was created on this call.
func EnsureAdmin(ctx context.Context, auth *service.AuthService) (bool, error) {
	_, err := auth.Register(ctx, AdminName, AdminEmail, AdminPassword, model.RoleAdmin)
	if errors.Is(err, service.ErrEmailTaken) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	return true, nil
}

// SampleData inserts example customers and flights. Users already registered
// are skipped; flights are only inserted while the catalogue is empty, so
// restarting does not duplicate them.
func SampleData(ctx context.Context, auth *service.AuthService, flights *service.FlightService) error {
	users := []struct{ name, email, password string }{
		{"João Silva", "joao@email.com", "123456"},
		{"Maria Santos", "maria@email.com", "123456"},
		{"Pedro Oliveira", "pedro@email.com", "123456"},
	}
	for _, u := range users {
		_, err := auth.Register(ctx, u.name, u.email, u.password, model.RoleCustomer)
		if err != nil && !errors.Is(err, service.ErrEmailTaken) {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	existing, err := flights.List(ctx)
	if err != nil {
		return fmt.Errorf("seed flights: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	departure := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	catalogue := []model.Flight{
		{Origin: "São Paulo", Destination: "Rio de Janeiro", DepartureTime: departure, Carrier: "LATAM", TotalSeats: 30, Price: 250},
		{Origin: "Rio de Janeiro", Destination: "Brasília", DepartureTime: departure.Add(6 * time.Hour), Carrier: "GOL", TotalSeats: 18, Price: 310.5},
		{Origin: "São Paulo", Destination: "Salvador", DepartureTime: departure.Add(30 * time.Hour), Carrier: "Azul", TotalSeats: 42, Price: 499.9},
	}
	for _, f := range catalogue {
		if _, err := flights.Create(ctx, f); err != nil {
			return fmt.Errorf("seed flight %s-%s: %w", f.Origin, f.Destination, err)
		}
	}
	return nil
}
