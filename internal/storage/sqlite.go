// Package storage provides SQLite-based persistence for saved shots.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/parabola/internal/projectile"
)

// DefaultPath is where the CLI keeps its shot database.
const DefaultPath = "~/.parabola/shots.db"

// ShortIDLen is the number of ID characters shown in listings.
const ShortIDLen = 8

var (
	// ErrShotNotFound is returned when no shot matches an ID.
	ErrShotNotFound = errors.New("shot not found")
	// ErrAmbiguousID is returned when an ID prefix matches several shots.
	ErrAmbiguousID = errors.New("ambiguous shot id")
)

// timeLayout is how created_at is written; SQLite's own CURRENT_TIMESTAMP
// format is still accepted when reading.
const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the SQLite database connection for shot persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Shot is a saved launch together with its computed summary.
type Shot struct {
	ID           string
	Label        string
	Launch       projectile.Launch
	Lands        bool
	Range        float64 // meaningful only when Lands
	TimeOfFlight float64 // meaningful only when Lands
	MaxHeight    float64
	CreatedAt    time.Time
}

// ShortID returns the abbreviated ID shown in listings.
func (s Shot) ShortID() string {
	if len(s.ID) <= ShortIDLen {
		return s.ID
	}
	return s.ID[:ShortIDLen]
}

// Trajectory recomputes the full trajectory of the saved launch.
func (s Shot) Trajectory() projectile.Trajectory {
	return projectile.Compute(s.Launch)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS shots (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL DEFAULT '',
			x0 REAL NOT NULL,
			y0 REAL NOT NULL,
			v0 REAL NOT NULL,
			deg REAL NOT NULL,
			g REAL NOT NULL,
			range_m REAL,
			time_of_flight REAL,
			max_height REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_shots_created ON shots(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_shots_range ON shots(range_m DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveShot computes the trajectory of launch and records it under label.
// Range and time of flight are stored as NULL when the shot never lands.
func (s *Store) SaveShot(label string, launch projectile.Launch) (Shot, error) {
	tr := projectile.Compute(launch)
	shot := Shot{
		ID:        uuid.NewString(),
		Label:     strings.TrimSpace(label),
		Launch:    launch,
		Lands:     tr.Lands,
		MaxHeight: tr.MaxHeight,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	var rng, tof sql.NullFloat64
	if tr.Lands {
		shot.Range, shot.TimeOfFlight = tr.Range, tr.TimeOfFlight
		rng = sql.NullFloat64{Float64: tr.Range, Valid: true}
		tof = sql.NullFloat64{Float64: tr.TimeOfFlight, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO shots (id, label, x0, y0, v0, deg, g, range_m, time_of_flight, max_height, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		shot.ID, shot.Label, launch.X0, launch.Y0, launch.V0, launch.Deg, launch.G,
		rng, tof, shot.MaxHeight, shot.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Shot{}, fmt.Errorf("storage: cannot save shot: %w", err)
	}

	return shot, nil
}

const shotColumns = `id, label, x0, y0, v0, deg, g, range_m, time_of_flight, max_height, created_at`

// Shot retrieves a shot by its full ID or a unique ID prefix.
func (s *Store) Shot(id string) (Shot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Shot{}, fmt.Errorf("storage: empty id: %w", ErrShotNotFound)
	}

	rows, err := s.db.Query(
		`SELECT `+shotColumns+` FROM shots WHERE id = ? OR id LIKE ? ESCAPE '\' LIMIT 2`,
		id, escapeLike(id)+"%",
	)
	if err != nil {
		return Shot{}, fmt.Errorf("storage: cannot query shot: %w", err)
	}
	shots, err := scanShots(rows)
	if err != nil {
		return Shot{}, err
	}

	switch len(shots) {
	case 0:
		return Shot{}, fmt.Errorf("storage: %s: %w", id, ErrShotNotFound)
	case 1:
		return shots[0], nil
	}
	for _, sh := range shots {
		if sh.ID == id {
			return sh, nil
		}
	}
	return Shot{}, fmt.Errorf("storage: %s: %w", id, ErrAmbiguousID)
}

// RecentShots retrieves the latest N shots, newest first.
func (s *Store) RecentShots(limit int) ([]Shot, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+shotColumns+`
		 FROM shots
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shots: %w", err)
	}
	return scanShots(rows)
}

// LongestShots retrieves the N shots with the greatest range.
// Shots that never land sort after every landing shot.
func (s *Store) LongestShots(limit int) ([]Shot, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+shotColumns+`
		 FROM shots
		 ORDER BY range_m IS NULL, range_m DESC, created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shots: %w", err)
	}
	return scanShots(rows)
}

// DeleteShot removes a shot by its full ID or a unique ID prefix.
// Returns the removed shot.
func (s *Store) DeleteShot(id string) (Shot, error) {
	shot, err := s.Shot(id)
	if err != nil {
		return Shot{}, err
	}
	if _, err := s.db.Exec("DELETE FROM shots WHERE id = ?", shot.ID); err != nil {
		return Shot{}, fmt.Errorf("storage: cannot delete shot: %w", err)
	}
	return shot, nil
}

// ClearShots deletes every saved shot and returns how many were removed.
func (s *Store) ClearShots() (int64, error) {
	result, err := s.db.Exec("DELETE FROM shots")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear shots: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// ShotStats contains aggregated statistics over all saved shots.
type ShotStats struct {
	Total        int
	Landed       int
	LongestRange float64
	HighestApex  float64
	LastSaved    time.Time
}

// Stats retrieves aggregated statistics over all saved shots.
func (s *Store) Stats() (*ShotStats, error) {
	stats := &ShotStats{}
	var lastSaved any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(range_m), COALESCE(MAX(range_m), 0), COALESCE(MAX(max_height), 0), MAX(created_at)
		 FROM shots`,
	).Scan(&stats.Total, &stats.Landed, &stats.LongestRange, &stats.HighestApex, &lastSaved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get shot stats: %w", err)
	}
	stats.LastSaved = parseTime(lastSaved)

	return stats, nil
}

func scanShots(rows *sql.Rows) ([]Shot, error) {
	defer rows.Close()

	var shots []Shot
	for rows.Next() {
		var sh Shot
		var rng, tof sql.NullFloat64
		var createdAt any
		l := &sh.Launch
		if err := rows.Scan(&sh.ID, &sh.Label, &l.X0, &l.Y0, &l.V0, &l.Deg, &l.G,
			&rng, &tof, &sh.MaxHeight, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if rng.Valid && tof.Valid {
			sh.Lands = true
			sh.Range, sh.TimeOfFlight = rng.Float64, tof.Float64
		}
		sh.CreatedAt = parseTime(createdAt)
		shots = append(shots, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return shots, nil
}

// parseTime handles both time.Time and the string layouts SQLite returns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
