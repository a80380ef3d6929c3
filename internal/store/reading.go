// ABOUTME: Reading entity for blood pressure measurements
// ABOUTME: CSV row serialization and display formatting
package store

import (
	"fmt"
	"strconv"
	"time"
)

// displayLayout renders the local time as date plus 12-hour clock
// with lowercase am/pm.
const displayLayout = "2006-01-02 03:04pm"

// Reading is one recorded blood pressure measurement. Readings are
// immutable once written; the store never updates or deletes a row.
type Reading struct {
	Timestamp time.Time `json:"timestamp"`
	Systolic  uint32    `json:"systolic"`
	Diastolic uint32    `json:"diastolic"`
	Pulse     uint32    `json:"pulse"`
}

// NewReading builds a reading stamped with the current instant,
// normalized to UTC at second precision.
func NewReading(systolic, diastolic, pulse uint32) Reading {
	return Reading{
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Systolic:  systolic,
		Diastolic: diastolic,
		Pulse:     pulse,
	}
}

// Before orders readings by timestamp only. Pressure and pulse values
// never participate in ordering, so equal-timestamp readings compare
// equal regardless of their other fields.
func (r Reading) Before(other Reading) bool {
	return r.Timestamp.Before(other.Timestamp)
}

// String formats the reading for display in the local time zone.
func (r Reading) String() string {
	local := r.Timestamp.Local()
	return fmt.Sprintf("%s\tBP: %d/%d\tPulse: %d",
		local.Format(displayLayout), r.Systolic, r.Diastolic, r.Pulse)
}

// marshalRow serializes the reading as a CSV record: unix seconds,
// systolic, diastolic, pulse.
func (r Reading) marshalRow() []string {
	return []string{
		strconv.FormatInt(r.Timestamp.Unix(), 10),
		strconv.FormatUint(uint64(r.Systolic), 10),
		strconv.FormatUint(uint64(r.Diastolic), 10),
		strconv.FormatUint(uint64(r.Pulse), 10),
	}
}

// unmarshalRow parses a four-field CSV record back into a Reading.
func unmarshalRow(row []string) (Reading, error) {
	if len(row) != 4 {
		return Reading{}, fmt.Errorf("expected 4 fields, got %d", len(row))
	}

	secs, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return Reading{}, fmt.Errorf("invalid timestamp %q: %w", row[0], err)
	}

	systolic, err := strconv.ParseUint(row[1], 10, 32)
	if err != nil {
		return Reading{}, fmt.Errorf("invalid systolic %q: %w", row[1], err)
	}
	diastolic, err := strconv.ParseUint(row[2], 10, 32)
	if err != nil {
		return Reading{}, fmt.Errorf("invalid diastolic %q: %w", row[2], err)
	}
	pulse, err := strconv.ParseUint(row[3], 10, 32)
	if err != nil {
		return Reading{}, fmt.Errorf("invalid pulse %q: %w", row[3], err)
	}

	return Reading{
		Timestamp: time.Unix(secs, 0).UTC(),
		Systolic:  uint32(systolic),
		Diastolic: uint32(diastolic),
		Pulse:     uint32(pulse),
	}, nil
}
