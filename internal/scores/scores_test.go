package scores

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sub", "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndBest(t *testing.T) {
	s := openTestStore(t)
	when := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	for _, d := range []float64{1200, 4800, 300, 4800} {
		if _, err := s.Record(Run{Distance: d, ShotsFired: 7, Duration: 1500 * time.Millisecond, CreatedAt: when}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	best, err := s.Best(3)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("len(best) = %d, want 3", len(best))
	}
	wantDist := []float64{4800, 4800, 1200}
	for i, r := range best {
		if r.Distance != wantDist[i] {
			t.Errorf("best[%d].Distance = %v, want %v", i, r.Distance, wantDist[i])
		}
	}
	if best[0].ID > best[1].ID {
		t.Errorf("tie not broken by age: ids %d, %d", best[0].ID, best[1].ID)
	}
	if best[0].ShotsFired != 7 || best[0].Duration != 1500*time.Millisecond || !best[0].CreatedAt.Equal(when) {
		t.Errorf("best[0] = %+v", best[0])
	}
}

func TestBestDefaultLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 12; i++ {
		if _, err := s.Record(Run{Distance: float64(i)}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	best, err := s.Best(0)
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if len(best) != 10 {
		t.Errorf("len(best) = %d, want 10", len(best))
	}
	n, err := s.Count()
	if err != nil || n != 12 {
		t.Errorf("Count = %d, %v; want 12", n, err)
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Record(Run{Distance: 42}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	best, err := s.Best(1)
	if err != nil || len(best) != 1 || best[0].Distance != 42 {
		t.Errorf("Best after reopen = %v, %v", best, err)
	}
}

func TestNilStore(t *testing.T) {
	var s *Store
	if _, err := s.Record(Run{}); !errors.Is(err, ErrNoStore) {
		t.Errorf("Record err = %v, want ErrNoStore", err)
	}
	if _, err := s.Best(1); !errors.Is(err, ErrNoStore) {
		t.Errorf("Best err = %v, want ErrNoStore", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close = %v, want nil", err)
	}
}
