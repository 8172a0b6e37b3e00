package model

import (
	"fmt"
	"time"
)

// Role classifies an account. Admins manage the flight catalogue and read the
// administrative reports; customers book seats. The constants double as the
// tokens persisted in the users file.
type Role string

const (
	RoleCustomer Role = "CLIENTE"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole maps a persisted role token back to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User represents a registered account.
//
// Fields:
//
//	ID           – opaque unique identifier.
//	Name         – display name.
//	Email        – unique login address.
//	PasswordHash – bcrypt hash; the plaintext is never stored.
//	Role         – CLIENTE or ADMIN.
//	CreatedAt    – registration timestamp (UTC).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// MarshalRecord renders the user as one line of the users file:
// id;name;email;passwordHash;role;createdAt.
func (u User) MarshalRecord() (string, error) {
	return joinRecord(u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), formatTime(u.CreatedAt))
}

// UnmarshalUserRecord parses one line of the users file.
func UnmarshalUserRecord(line string) (User, error) {
	parts, err := splitRecord(line, 6)
	if err != nil {
		return User{}, fmt.Errorf("user record: %w", err)
	}
	role, err := ParseRole(parts[4])
	if err != nil {
		return User{}, fmt.Errorf("user record: %w", err)
	}
	createdAt, err := parseTime(parts[5])
	if err != nil {
		return User{}, fmt.Errorf("user record: %w", err)
	}
	return User{
		ID:           parts[0],
		Name:         parts[1],
		Email:        parts[2],
		PasswordHash: parts[3],
		Role:         role,
		CreatedAt:    createdAt,
	}, nil
}
