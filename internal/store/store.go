// ABOUTME: Append-only CSV store for blood pressure readings
// ABOUTME: Handles durable appends, full-scan loads, and reporting
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Store persists readings as CSV rows in a single backing file.
// One operation per process invocation; no locking is performed, so
// concurrent appends interleave at the OS file-append level.
type Store struct {
	path string
}

// New returns a store over the backing file at path. The file is not
// touched until the first operation.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing-file path.
func (s *Store) Path() string {
	return s.path
}

// Append durably appends one reading, creating the data directory and
// backing file if needed. The row is flushed before returning. A
// partially written row on I/O failure is possible; no rollback is
// attempted.
func (s *Store) Append(r Reading) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(r.marshalRow())
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write reading: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close data file: %w", closeErr)
	}
	return nil
}

// LoadAll reads every stored reading in appearance order. A missing
// backing file is an error: a report before the first record fails
// rather than returning an empty result. Any malformed row fails the
// entire load.
func (s *Store) LoadAll() ([]Reading, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 4

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	readings := make([]Reading, 0, len(rows))
	for i, row := range rows {
		r, err := unmarshalRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to parse row %d: %w", i+1, err)
		}
		readings = append(readings, r)
	}

	return readings, nil
}

// SearchParams narrows a report by time range. A zero Limit means no
// truncation.
type SearchParams struct {
	Since *time.Time
	Until *time.Time
	Limit int
}

// Report returns at most limit readings, most recent first.
func (s *Store) Report(limit int) ([]Reading, error) {
	return s.Search(SearchParams{Limit: limit})
}

// Search loads all readings, applies the optional time bounds, sorts
// ascending by timestamp, reverses to descending, and truncates to the
// limit. Comparison examines timestamps only, so equal-timestamp
// readings keep appearance order via the stable sort.
func (s *Store) Search(params SearchParams) ([]Reading, error) {
	readings, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	if params.Since != nil || params.Until != nil {
		filtered := readings[:0]
		for _, r := range readings {
			if params.Since != nil && r.Timestamp.Before(*params.Since) {
				continue
			}
			if params.Until != nil && r.Timestamp.After(*params.Until) {
				continue
			}
			filtered = append(filtered, r)
		}
		readings = filtered
	}

	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].Before(readings[j])
	})
	for i, j := 0, len(readings)-1; i < j; i, j = i+1, j-1 {
		readings[i], readings[j] = readings[j], readings[i]
	}

	if params.Limit > 0 && len(readings) > params.Limit {
		readings = readings[:params.Limit]
	}

	return readings, nil
}
