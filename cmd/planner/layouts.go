package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/registry"
	"github.com/vovakirdan/arena-planner/internal/storage"
)

// openStore opens the database named by --db or the planner config.
func openStore() (*storage.Store, error) {
	return storage.Open(flagDBPath)
}

// isLayoutFile reports whether arg names an existing layout file.
func isLayoutFile(arg string) bool {
	ext := strings.ToLower(filepath.Ext(arg))
	if !slices.Contains(arena.FormatExtensions(), ext) {
		return false
	}
	_, err := os.Stat(arg)
	return err == nil
}

// resolveLayout loads arg as a layout file when it is one, otherwise as the
// name of a saved layout. The result is validated.
func resolveLayout(arg string) (arena.Layout, error) {
	var (
		l   arena.Layout
		err error
	)

	if isLayoutFile(arg) {
		l, err = arena.LoadFile(arg)
		if err != nil {
			return arena.Layout{}, err
		}
		logger.Debug("layout loaded from file", "path", arg, "name", l.Name)
	} else {
		store, openErr := openStore()
		if openErr != nil {
			return arena.Layout{}, openErr
		}
		defer store.Close()

		l, err = store.LoadLayout(arg)
		if errors.Is(err, storage.ErrLayoutNotFound) {
			return arena.Layout{}, fmt.Errorf("%q is neither a layout file nor a saved layout", arg)
		}
		if err != nil {
			return arena.Layout{}, err
		}
		logger.Debug("layout loaded from database", "name", arg)
	}

	if err := l.Validate(); err != nil {
		return arena.Layout{}, fmt.Errorf("layout %s: %w", l.Name, err)
	}
	return l, nil
}

// pickGame chooses the engine id: explicit flag, then the layout's own game,
// then the configured default.
func pickGame(flag string, l *arena.Layout) string {
	switch {
	case flag != "":
		return flag
	case l.GameID != "":
		return l.GameID
	default:
		return plannerCfg.Simulation.DefaultGame
	}
}

// engineFor creates the engine that scores l.
func engineFor(flag string, l *arena.Layout) (registry.Engine, error) {
	id := pickGame(flag, l)
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q (run 'planner list' to see available games)", id)
	}
	return registry.Create(id)
}

// velocityOr returns flag when set, otherwise the configured robot velocity.
func velocityOr(flag float64) float64 {
	if flag > 0 {
		return flag
	}
	return plannerCfg.Robot.Velocity
}

// rateOr returns flag when set, otherwise the configured animation rate.
func rateOr(flag float64) float64 {
	if flag > 0 {
		return flag
	}
	return plannerCfg.Simulation.AnimationRate
}
