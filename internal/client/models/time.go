package models

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp is a time.Time that tolerates the backend's datetime encoding.
// FastAPI serializes naive datetimes without a timezone offset
// ("2024-05-01T10:20:30.123456"), which encoding/json's time.Time rejects.
type Timestamp struct {
	time.Time
}

// Accepted layouts, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}

// NewTimestamp wraps a time.Time.
func NewTimestamp(v time.Time) *Timestamp {
	return &Timestamp{Time: v}
}
