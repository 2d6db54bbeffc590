// Package gatefile loads netgate.toml, the declarative form of the
// gate's targets and timing. Flags override file values; file values
// override built-in defaults.
package gatefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verkko/netgate/pkg/gate"
)

// FileName is searched upward from the working directory.
const FileName = "netgate.toml"

// ErrNotFound is returned by Find when no file exists and no explicit
// path was given. Callers treat it as "use defaults".
var ErrNotFound = errors.New("netgate.toml not found")

// File mirrors the netgate.toml layout.
type File struct {
	Timing  Timing  `toml:"timing"`
	Targets Targets `toml:"targets"`
	Service Service `toml:"service"`
}

// Timing holds the retry bounds, in whole seconds to match the
// shell-style configuration the gate replaces.
type Timing struct {
	MaxWaitSeconds      int `toml:"max_wait_seconds"`
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
	SettleSeconds       int `toml:"settle_seconds"`
}

// Targets names the probe endpoints.
type Targets struct {
	Ping string   `toml:"ping"`
	DNS  string   `toml:"dns"`
	LAN  []string `toml:"lan"`
}

// Service configures the optional post-gate HTTP probe of the
// dependent service itself.
type Service struct {
	URL      string `toml:"url"`
	Status   int    `toml:"status"`
	JSONPath string `toml:"json_path"`
}

// Config converts the timing section to a gate.Config. Unset fields
// stay zero so gate defaults apply.
func (f File) Config() gate.Config {
	return gate.Config{
		MaxWait:      time.Duration(f.Timing.MaxWaitSeconds) * time.Second,
		PollInterval: time.Duration(f.Timing.PollIntervalSeconds) * time.Second,
		Settle:       time.Duration(f.Timing.SettleSeconds) * time.Second,
	}
}

// Find locates the config file. An explicit path must exist. Otherwise
// the search walks up from startDir, stopping at a .git directory, the
// home directory, or the filesystem root, like tools that look for a
// project-level dotfile.
func Find(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}

// Load parses and validates a netgate.toml.
func Load(path string) (File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f File) validate() error {
	if n := len(f.Targets.LAN); n != 0 && n != 2 {
		return fmt.Errorf("targets.lan must list exactly two addresses, got %d", n)
	}
	if f.Timing.MaxWaitSeconds < 0 || f.Timing.PollIntervalSeconds < 0 || f.Timing.SettleSeconds < 0 {
		return errors.New("timing values must not be negative")
	}
	return nil
}
