package model

import (
	"fmt"
	"strings"
	"time"
)

// fieldSep joins record fields on one line of a collection file. A field may
// never contain the separator or a newline, otherwise the record could not be
// read back.
const fieldSep = ";"

// joinRecord renders fields as a single file line, rejecting values that
// would corrupt the line-oriented format.
func joinRecord(fields ...string) (string, error) {
	for _, f := range fields {
		if strings.ContainsAny(f, fieldSep+"\n\r") {
			return "", fmt.Errorf("field %q contains a reserved character", f)
		}
	}
	return strings.Join(fields, fieldSep), nil
}

// splitRecord splits a file line into exactly want fields.
func splitRecord(line string, want int) ([]string, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d fields, got %d", want, len(parts))
	}
	return parts, nil
}

// formatTime and parseTime fix the timestamp representation used in all
// collection files. RFC 3339 in UTC keeps lines unambiguous and sortable.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}
