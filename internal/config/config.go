// Package config loads xbase.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"xbase/internal/trace"
)

// FileName is the manifest searched for by Find.
const FileName = "xbase.toml"

// ErrUnknownKey is wrapped when the manifest holds keys no section declares.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config is the merged configuration. Zero values mean "unset" until Defaults fills them.
type Config struct {
	Cache CacheConfig `toml:"cache"`
	Run   RunConfig   `toml:"run"`
	Trace TraceConfig `toml:"trace"`

	// Path of the manifest this came from, empty for defaults only.
	Path string `toml:"-"`
}

type CacheConfig struct {
	// Dir is resolved against the manifest directory when relative.
	Dir       string `toml:"dir"`
	TrustName bool   `toml:"trust_name"`
}

type RunConfig struct {
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Defaults returns the configuration used without a manifest.
func Defaults() Config {
	return Config{
		Run:   RunConfig{Color: "auto", MaxDiagnostics: 100},
		Trace: TraceConfig{Level: "off", Format: "text"},
	}
}

// Find walks up from startDir to locate xbase.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over Defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if meta.IsDefined("cache", "dir") && cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads explicit when set, otherwise the nearest manifest above startDir,
// otherwise Defaults.
func Discover(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Defaults(), nil
	}
	return Load(path)
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Run.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[run] color must be auto, on or off, got %q", c.Run.Color)
	}
	if c.Run.MaxDiagnostics < 0 {
		return fmt.Errorf("[run] max_diagnostics must not be negative")
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace] level: %w", err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("[trace] format: %w", err)
	}
	return nil
}
