package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/parabola/internal/projectile"
)

var (
	standard  = projectile.Launch{Y0: 2, V0: 20, Deg: 45, G: 9.81}
	short     = projectile.Launch{Y0: 0, V0: 10, Deg: 30, G: 9.81}
	neverLand = projectile.Launch{Y0: 5, V0: 10, Deg: 60, G: -9.81}
)

// openTestStore opens a store in a temp dir with a clock that advances one
// second per save, so ordering by created_at is deterministic.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsShots(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saved, err := store.SaveShot("keep", standard)
	if err != nil {
		t.Fatalf("SaveShot() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.Shot(saved.ID)
	if err != nil {
		t.Fatalf("Shot() after reopen failed: %v", err)
	}
	if got.Label != "keep" {
		t.Errorf("Label = %q, expected %q", got.Label, "keep")
	}
}

func TestSaveShotComputesSummary(t *testing.T) {
	store := openTestStore(t)

	shot, err := store.SaveShot("  standard  ", standard)
	if err != nil {
		t.Fatalf("SaveShot() failed: %v", err)
	}
	if len(shot.ID) != 36 {
		t.Errorf("ID = %q, expected a UUID", shot.ID)
	}
	if shot.Label != "standard" {
		t.Errorf("Label = %q, expected trimmed label", shot.Label)
	}

	tr := projectile.Compute(standard)
	got, err := store.Shot(shot.ID)
	if err != nil {
		t.Fatalf("Shot() failed: %v", err)
	}
	if got.Launch != standard {
		t.Errorf("Launch = %+v, expected %+v", got.Launch, standard)
	}
	if !got.Lands || math.Abs(got.Range-tr.Range) > 1e-9 || math.Abs(got.TimeOfFlight-tr.TimeOfFlight) > 1e-9 {
		t.Errorf("summary = lands %v range %v tof %v, expected %v %v", got.Lands, got.Range, got.TimeOfFlight, tr.Range, tr.TimeOfFlight)
	}
	if math.Abs(got.MaxHeight-tr.MaxHeight) > 1e-9 {
		t.Errorf("MaxHeight = %v, expected %v", got.MaxHeight, tr.MaxHeight)
	}
	if !got.CreatedAt.Equal(shot.CreatedAt) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, shot.CreatedAt)
	}
}

func TestSaveShotNeverLands(t *testing.T) {
	store := openTestStore(t)

	shot, err := store.SaveShot("up", neverLand)
	if err != nil {
		t.Fatalf("SaveShot() failed: %v", err)
	}
	got, err := store.Shot(shot.ID)
	if err != nil {
		t.Fatalf("Shot() failed: %v", err)
	}
	if got.Lands || got.Range != 0 || got.TimeOfFlight != 0 {
		t.Errorf("never-landing shot should have no range, got %+v", got)
	}
}

func TestShotByPrefix(t *testing.T) {
	store := openTestStore(t)

	shot, err := store.SaveShot("a", standard)
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.Shot(shot.ShortID())
	if err != nil {
		t.Fatalf("Shot(prefix) failed: %v", err)
	}
	if got.ID != shot.ID {
		t.Errorf("Shot(prefix) = %s, expected %s", got.ID, shot.ID)
	}

	if _, err := store.Shot("does-not-exist"); !errors.Is(err, ErrShotNotFound) {
		t.Errorf("Shot(unknown) error = %v, expected ErrShotNotFound", err)
	}
	if _, err := store.Shot(""); !errors.Is(err, ErrShotNotFound) {
		t.Errorf("Shot(empty) error = %v, expected ErrShotNotFound", err)
	}
	if _, err := store.Shot("%"); !errors.Is(err, ErrShotNotFound) {
		t.Errorf("Shot(%%) should not act as a wildcard, got %v", err)
	}
}

func TestRecentShots(t *testing.T) {
	store := openTestStore(t)

	for _, label := range []string{"first", "second", "third"} {
		if _, err := store.SaveShot(label, standard); err != nil {
			t.Fatalf("SaveShot() failed: %v", err)
		}
	}

	shots, err := store.RecentShots(2)
	if err != nil {
		t.Fatalf("RecentShots() failed: %v", err)
	}
	if len(shots) != 2 {
		t.Fatalf("Expected 2 shots, got %d", len(shots))
	}
	if shots[0].Label != "third" || shots[1].Label != "second" {
		t.Errorf("RecentShots() = [%s %s], expected newest first", shots[0].Label, shots[1].Label)
	}

	// Non-positive limit falls back to 10
	all, err := store.RecentShots(0)
	if err != nil {
		t.Fatalf("RecentShots(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 shots, got %d", len(all))
	}
}

func TestLongestShots(t *testing.T) {
	store := openTestStore(t)

	for label, l := range map[string]projectile.Launch{"standard": standard, "short": short, "up": neverLand} {
		if _, err := store.SaveShot(label, l); err != nil {
			t.Fatalf("SaveShot(%s) failed: %v", label, err)
		}
	}

	shots, err := store.LongestShots(10)
	if err != nil {
		t.Fatalf("LongestShots() failed: %v", err)
	}
	if len(shots) != 3 {
		t.Fatalf("Expected 3 shots, got %d", len(shots))
	}

	order := []string{shots[0].Label, shots[1].Label, shots[2].Label}
	expected := []string{"standard", "short", "up"}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("LongestShots() order = %v, expected %v", order, expected)
			break
		}
	}
}

func TestDeleteShot(t *testing.T) {
	store := openTestStore(t)

	keep, _ := store.SaveShot("keep", standard)
	drop, _ := store.SaveShot("drop", short)

	removed, err := store.DeleteShot(drop.ShortID())
	if err != nil {
		t.Fatalf("DeleteShot() failed: %v", err)
	}
	if removed.ID != drop.ID {
		t.Errorf("DeleteShot() removed %s, expected %s", removed.ID, drop.ID)
	}

	if _, err := store.Shot(drop.ID); !errors.Is(err, ErrShotNotFound) {
		t.Errorf("deleted shot should be gone, got %v", err)
	}
	if _, err := store.Shot(keep.ID); err != nil {
		t.Errorf("other shot should remain: %v", err)
	}
	if _, err := store.DeleteShot(drop.ID); !errors.Is(err, ErrShotNotFound) {
		t.Errorf("second delete error = %v, expected ErrShotNotFound", err)
	}
}

func TestClearShotsAndStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Total != 0 || !stats.LastSaved.IsZero() {
		t.Errorf("empty store stats = %+v", stats)
	}

	store.SaveShot("standard", standard)
	store.SaveShot("short", short)
	last, _ := store.SaveShot("up", neverLand)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Total != 3 || stats.Landed != 2 {
		t.Errorf("Stats() total %d landed %d, expected 3 and 2", stats.Total, stats.Landed)
	}
	if want := projectile.Compute(standard).Range; math.Abs(stats.LongestRange-want) > 1e-9 {
		t.Errorf("LongestRange = %v, expected %v", stats.LongestRange, want)
	}
	if !stats.LastSaved.Equal(last.CreatedAt) {
		t.Errorf("LastSaved = %v, expected %v", stats.LastSaved, last.CreatedAt)
	}

	n, err := store.ClearShots()
	if err != nil {
		t.Fatalf("ClearShots() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("ClearShots() removed %d, expected 3", n)
	}
	shots, _ := store.RecentShots(10)
	if len(shots) != 0 {
		t.Errorf("Expected no shots after clear, got %d", len(shots))
	}
}
