// ABOUTME: Store tests for append, load, and report behavior
// ABOUTME: Validates round-trips, ordering, limits, and failure modes
package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "bloodpressure", "data.csv"))
}

func mustAppend(t *testing.T, s *Store, r Reading) {
	t.Helper()
	if err := s.Append(r); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
}

func reading(ts time.Time, systolic, diastolic, pulse uint32) Reading {
	return Reading{
		Timestamp: ts.UTC().Truncate(time.Second),
		Systolic:  systolic,
		Diastolic: diastolic,
		Pulse:     pulse,
	}
}

func TestAppendCreatesFile(t *testing.T) {
	s := tempStore(t)
	mustAppend(t, s, reading(time.Now(), 120, 80, 60))

	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("data file was not created: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	s := tempStore(t)
	want := reading(time.Date(2024, 3, 15, 8, 30, 45, 0, time.UTC), 118, 76, 58)
	mustAppend(t, s, want)

	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d readings, want 1", len(got))
	}
	if !got[0].Timestamp.Equal(want.Timestamp) {
		t.Errorf("timestamp: got %v, want %v", got[0].Timestamp, want.Timestamp)
	}
	if got[0].Systolic != want.Systolic || got[0].Diastolic != want.Diastolic || got[0].Pulse != want.Pulse {
		t.Errorf("fields: got %+v, want %+v", got[0], want)
	}
}

func TestFileFormat(t *testing.T) {
	s := tempStore(t)
	ts := time.Date(2024, 3, 15, 8, 30, 45, 0, time.UTC)
	mustAppend(t, s, reading(ts, 120, 80, 60))

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("failed to read data file: %v", err)
	}
	want := "1710491445,120,80,60\n"
	if string(data) != want {
		t.Errorf("got %q, want %q", string(data), want)
	}
}

func TestAppendOnlyOrder(t *testing.T) {
	s := tempStore(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rs := []Reading{
		reading(base, 120, 80, 60),
		reading(base.Add(time.Hour), 130, 85, 65),
		reading(base.Add(2*time.Hour), 110, 70, 55),
	}
	for _, r := range rs {
		mustAppend(t, s, r)
	}

	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != len(rs) {
		t.Fatalf("got %d readings, want %d", len(got), len(rs))
	}
	for i := range rs {
		if !got[i].Timestamp.Equal(rs[i].Timestamp) {
			t.Errorf("reading %d out of order: got %v, want %v", i, got[i].Timestamp, rs[i].Timestamp)
		}
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	s := tempStore(t)
	if _, err := s.LoadAll(); err == nil {
		t.Error("expected error for missing data file, got nil")
	}
}

func TestLoadAllMalformedRow(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"non-numeric field", "1710491445,abc,80,60\n"},
		{"too few fields", "1710491445,120,80\n"},
		{"too many fields", "1710491445,120,80,60,99\n"},
		{"negative pulse", "1710491445,120,80,-5\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tempStore(t)
			mustAppend(t, s, reading(time.Now(), 120, 80, 60))

			f, err := os.OpenFile(s.Path(), os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				t.Fatalf("failed to open data file: %v", err)
			}
			if _, err := f.WriteString(tc.row); err != nil {
				t.Fatalf("failed to write row: %v", err)
			}
			_ = f.Close()

			if _, err := s.LoadAll(); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}

func TestReportDescendingOrder(t *testing.T) {
	s := tempStore(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	// Appended out of chronological order on purpose
	mustAppend(t, s, reading(base.Add(time.Hour), 130, 85, 65))
	mustAppend(t, s, reading(base, 120, 80, 60))
	mustAppend(t, s, reading(base.Add(2*time.Hour), 110, 70, 55))

	got, err := s.Report(10)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d readings, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.After(got[i-1].Timestamp) {
			t.Errorf("report not descending at index %d: %v after %v", i, got[i].Timestamp, got[i-1].Timestamp)
		}
	}
	if got[0].Systolic != 110 {
		t.Errorf("most recent reading first: got systolic %d, want 110", got[0].Systolic)
	}
}

func TestReportLimit(t *testing.T) {
	s := tempStore(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		mustAppend(t, s, reading(base.Add(time.Duration(i)*time.Hour), 120, 80, 60))
	}

	t.Run("limit below count", func(t *testing.T) {
		got, err := s.Report(3)
		if err != nil {
			t.Fatalf("Report failed: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("got %d readings, want 3", len(got))
		}
	})

	t.Run("limit above count", func(t *testing.T) {
		got, err := s.Report(10)
		if err != nil {
			t.Fatalf("Report failed: %v", err)
		}
		if len(got) != 5 {
			t.Errorf("got %d readings, want 5", len(got))
		}
	})
}

func TestDuplicateTimestampsPreserved(t *testing.T) {
	s := tempStore(t)
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mustAppend(t, s, reading(ts, 120, 80, 60))
	mustAppend(t, s, reading(ts, 130, 85, 65))

	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d readings, want 2 (duplicates preserved)", len(got))
	}
}

func TestSearchTimeRange(t *testing.T) {
	s := tempStore(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		mustAppend(t, s, reading(base.Add(time.Duration(i)*24*time.Hour), 120, 80, 60))
	}

	since := base.Add(24 * time.Hour)
	until := base.Add(3 * 24 * time.Hour)
	got, err := s.Search(SearchParams{Since: &since, Until: &until})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d readings, want 3", len(got))
	}
	if !got[0].Timestamp.Equal(until) {
		t.Errorf("newest in range: got %v, want %v", got[0].Timestamp, until)
	}
	if !got[2].Timestamp.Equal(since) {
		t.Errorf("oldest in range: got %v, want %v", got[2].Timestamp, since)
	}
}

func TestRecordThenReportScenario(t *testing.T) {
	s := tempStore(t)
	t1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(12 * time.Hour)
	mustAppend(t, s, reading(t1, 120, 80, 60))
	mustAppend(t, s, reading(t2, 130, 85, 65))

	t.Run("limit 1 returns latest", func(t *testing.T) {
		got, err := s.Report(1)
		if err != nil {
			t.Fatalf("Report failed: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %d readings, want 1", len(got))
		}
		if got[0].Systolic != 130 || got[0].Diastolic != 85 || got[0].Pulse != 65 {
			t.Errorf("got %+v, want the second reading", got[0])
		}
	})

	t.Run("limit 10 returns both newest first", func(t *testing.T) {
		got, err := s.Report(10)
		if err != nil {
			t.Fatalf("Report failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d readings, want 2", len(got))
		}
		if got[0].Systolic != 130 || got[1].Systolic != 120 {
			t.Errorf("wrong order: got systolics %d, %d", got[0].Systolic, got[1].Systolic)
		}
	})
}
