// Package cache stores translated scripts on disk so a re-run skips translation.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"xbase/internal/codegen"
	"xbase/internal/dialect"
	"xbase/internal/program"
	"xbase/internal/source"
)

// SchemaVersion - increment when Artifact format changes
const SchemaVersion uint16 = 1

const artifactExt = ".bin"

// ErrCorrupt is wrapped when a cache file exists but cannot be used.
var ErrCorrupt = errors.New("cache: corrupt artifact")

// Artifact is the on-disk form of one translated script.
type Artifact struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Key        string
	SourcePath string
	SourceHash [32]byte
	Dialect    string
	Listing    string
	Created    time.Time

	Unit program.Unit
}

// Options tune cache validation.
type Options struct {
	// TrustName reuses an artifact by script base name alone, ignoring the source hash.
	TrustName bool
}

// Cache maps a script's base name to <dir>/<name>.bin.
// Safe for concurrent use within one process; writers in different processes
// still race on the final rename.
type Cache struct {
	mu   sync.RWMutex
	dir  string
	opts Options
}

// DefaultDir returns $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open creates the cache directory if needed. An empty dir selects DefaultDir("xbase").
func Open(dir string, opts Options) (*Cache, error) {
	if dir == "" {
		d, err := DefaultDir("xbase")
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache{dir: dir, opts: opts}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Key returns the cache key of a script: its base name without extension.
func Key(scriptPath string) string {
	return source.BaseName(scriptPath)
}

// PathFor returns the artifact file of a script.
func (c *Cache) PathFor(scriptPath string) string {
	return filepath.Join(c.dir, Key(scriptPath)+artifactExt)
}

// CompileAndCache seals prog and writes it as the artifact of scriptPath.
// The write is atomic: a temp file in the same directory is renamed over the target.
func (c *Cache) CompileAndCache(scriptPath string, hash [32]byte, prog *codegen.Program) (*Artifact, error) {
	if prog == nil {
		return nil, errors.New("cache: nil program")
	}
	prog.Seal()
	art := &Artifact{
		Schema:     SchemaVersion,
		Key:        Key(scriptPath),
		SourcePath: scriptPath,
		SourceHash: hash,
		Dialect:    dialect.Primary.String(),
		Listing:    prog.Listing(),
		Created:    time.Now().UTC(),
		Unit:       *prog.Unit(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.PathFor(scriptPath)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return nil, err
	}
	tmp := f.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmp)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(art); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("cache: encode %s: %w", art.Key, err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		return nil, err
	}
	renamed = true
	return art, nil
}

// Lookup returns the cached artifact of scriptPath.
// A missing file, an older schema or (unless TrustName) a different source hash is a miss.
// An unreadable file is a miss with an error wrapping ErrCorrupt.
func (c *Cache) Lookup(scriptPath string, hash [32]byte) (*Artifact, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.PathFor(scriptPath)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var art Artifact
	if err := msgpack.NewDecoder(f).Decode(&art); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrCorrupt, p, err)
	}
	if art.Schema != SchemaVersion {
		return nil, false, nil
	}
	if !c.opts.TrustName && art.SourceHash != hash {
		return nil, false, nil
	}
	if err := art.Unit.Validate(); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrCorrupt, p, err)
	}
	return &art, true, nil
}

// Clean removes the cache directory with every artifact in it.
func (c *Cache) Clean() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	// переименуем каталог и удалим целиком
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
