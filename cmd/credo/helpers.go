package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulhuff/credo/internal/config"
	"github.com/paulhuff/credo/internal/credo"
	"github.com/paulhuff/credo/internal/state"
	"github.com/paulhuff/credo/internal/store"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openState wires the file store, catalog, and state controller together.
func openState() (*state.State, *store.FileStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	fileStore, err := store.NewFileStore(cfg.Data.File)
	if err != nil {
		return nil, nil, fmt.Errorf("store.NewFileStore(%s) > %w", cfg.Data.File, err)
	}

	catalog, err := credo.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("credo.Load() > %w", err)
	}

	st, err := state.New(fileStore, catalog)
	if err != nil {
		return nil, nil, fmt.Errorf("state.New() > %w", err)
	}
	return st, fileStore, nil
}

// parseCredoRef parses a composite key like "kekich_12" or "paulism_3".
func parseCredoRef(ref string) (credo.Type, int, error) {
	idx := strings.LastIndex(ref, "_")
	if idx < 1 {
		return "", 0, fmt.Errorf("invalid credo reference %q, expected e.g. kekich_12", ref)
	}

	t := credo.Type(ref[:idx])
	if t != credo.TypeKekich && t != credo.TypePaulism {
		return "", 0, fmt.Errorf("unknown credo type %q", ref[:idx])
	}

	id, err := strconv.Atoi(ref[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid credo id in %q: %w", ref, err)
	}
	return t, id, nil
}
