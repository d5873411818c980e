package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layouts accepted for tenant timestamps. PostgREST renders timestamptz as
// RFC 3339, timestamp without time zone without an offset and date as a bare day.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// flexTime decodes any of timestampLayouts. Values without an offset are UTC.
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*f = flexTime(t)
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// UnmarshalJSON reads tenant rows whatever the column type of the
// date fields is on the backend side.
func (t *Tenant) UnmarshalJSON(data []byte) error {
	type plain Tenant
	aux := struct {
		*plain
		StartDate flexTime `json:"start_date"`
		ExpiredAt flexTime `json:"expired_at"`
		CreatedAt flexTime `json:"created_at"`
	}{
		plain:     (*plain)(t),
		StartDate: flexTime(t.StartDate),
		ExpiredAt: flexTime(t.ExpiredAt),
		CreatedAt: flexTime(t.CreatedAt),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.StartDate = time.Time(aux.StartDate)
	t.ExpiredAt = time.Time(aux.ExpiredAt)
	t.CreatedAt = time.Time(aux.CreatedAt)
	return nil
}
