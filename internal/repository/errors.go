// Package repository persists each entity collection as a line-oriented text
// file and gives every mutation read-modify-write atomicity with respect to
// the other mutations on the same collection. Sentinel errors defined here
// let higher layers distinguish failure scenarios with errors.Is; anything
// else a store returns is an I/O or data-corruption failure wrapped with
// context.
package repository

import "errors"

// ErrNotFound is returned when no record carries the requested id. Update and
// Delete return it as well, so callers can tell a miss from an I/O failure.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned by Save when a record with the same id already
// exists in the collection.
var ErrDuplicateKey = errors.New("duplicate key")
