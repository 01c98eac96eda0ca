// Package prefs persists the presentation layer's visual preferences
// through the blob store. The ledger never reads these; they ride the
// same storage under their own keys.
package prefs

import (
	"context"

	"raijai/internal/blob"
)

const (
	KeyDarkMode   = "darkMode"
	KeyBackground = "app_bg_v1"
)

type Prefs struct {
	store blob.Store
}

func New(store blob.Store) *Prefs {
	return &Prefs{store: store}
}

// DarkMode reports the persisted dark-mode flag; absent or anything
// other than "true" means off.
func (p *Prefs) DarkMode(ctx context.Context) (bool, error) {
	value, ok, err := p.store.Get(ctx, KeyDarkMode)
	if err != nil {
		return false, err
	}
	return ok && string(value) == "true", nil
}

func (p *Prefs) SetDarkMode(ctx context.Context, on bool) error {
	value := "false"
	if on {
		value = "true"
	}
	return p.store.Set(ctx, KeyDarkMode, []byte(value))
}

// Background returns the persisted background theme string. The empty
// string means "use default".
func (p *Prefs) Background(ctx context.Context) (string, error) {
	value, ok, err := p.store.Get(ctx, KeyBackground)
	if err != nil || !ok {
		return "", err
	}
	return string(value), nil
}

func (p *Prefs) SetBackground(ctx context.Context, bg string) error {
	return p.store.Set(ctx, KeyBackground, []byte(bg))
}
