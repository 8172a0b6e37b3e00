// Package seatmap derives seat labels from a flight's seat count. The cabin
// is laid out in rows of six, columns A through F; seat maps are recomputed
// on demand and never stored, so the mapping must stay deterministic.
package seatmap

import (
	"slices"
	"strconv"
)

var columns = [...]string{"A", "B", "C", "D", "E", "F"}

// Generate returns the ordered seat labels for a cabin of totalSeats. Row r
// (1-based) contributes "rA" through "rF"; a partial last row keeps only the
// leading columns, so the result has exactly totalSeats entries. A
// non-positive count yields an empty map.
func Generate(totalSeats int) []string {
	if totalSeats < 1 {
		return nil
	}
	seats := make([]string, 0, totalSeats)
	for row := 1; len(seats) < totalSeats; row++ {
		for _, col := range columns {
			seats = append(seats, strconv.Itoa(row)+col)
			if len(seats) == totalSeats {
				break
			}
		}
	}
	return seats
}

// Contains reports whether seat is a valid label for a cabin of totalSeats.
func Contains(totalSeats int, seat string) bool {
	return slices.Contains(Generate(totalSeats), seat)
}
