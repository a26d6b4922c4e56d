package tui

import (
	"github.com/vovakirdan/parabola/internal/projectile"
	"github.com/vovakirdan/parabola/internal/storage"
)

//go:generate go tool mockgen -destination=./mocks/shotstore_mock.go -package=mocks . ShotStore

// ShotStore is the persistence the lab and the shot history need.
// *storage.Store satisfies it.
type ShotStore interface {
	SaveShot(label string, launch projectile.Launch) (storage.Shot, error)
	RecentShots(limit int) ([]storage.Shot, error)
	LongestShots(limit int) ([]storage.Shot, error)
	DeleteShot(id string) (storage.Shot, error)
}

var _ ShotStore = (*storage.Store)(nil)
