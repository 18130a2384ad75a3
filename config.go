package rcarena

import "github.com/rs/zerolog"

// Defaults from spec §6's configuration-constants table.
const (
	// MinBlockSize is the smallest size-class chunk size.
	MinBlockSize = 256
	// InitialChunksPerClass is the number of chunks preallocated when
	// a size class is first created.
	InitialChunksPerClass = 4
)

// Config holds the tunables an Arena is built from. NewArena starts
// from defaultConfig (spec §6's defaults) and applies each Option over
// it.
type Config struct {
	// MinBlockSize is the smallest size-class chunk size; must be a
	// power of two.
	MinBlockSize uintptr
	// InitialChunksPerClass is how many chunks a newly created size
	// class preallocates.
	InitialChunksPerClass int
	// Logger, if set, receives a debug-level event each time a size
	// class is provisioned and error-level fatal-abort notifications
	// from the Arena shell's allocation path (the
	// core chunk/list/handle types never log; see SPEC_FULL.md §4.F).
	Logger *zerolog.Logger
	// ID, if set, is used instead of a freshly generated UUID to
	// identify this arena in log fields.
	ID string
}

// Option configures an Arena at construction time.
type Option func(*Config)

// WithMinBlockSize overrides the smallest size-class chunk size. n
// must be a power of two.
func WithMinBlockSize(n uintptr) Option {
	return func(c *Config) { c.MinBlockSize = n }
}

// WithInitialChunksPerClass overrides how many chunks a newly created
// size class preallocates.
func WithInitialChunksPerClass(n int) Option {
	return func(c *Config) { c.InitialChunksPerClass = n }
}

// WithLogger attaches a structured logger to the arena shell.
func WithLogger(l *zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithID overrides the arena's log-correlation id.
func WithID(id string) Option {
	return func(c *Config) { c.ID = id }
}

func defaultConfig() Config {
	return Config{
		MinBlockSize:          MinBlockSize,
		InitialChunksPerClass: InitialChunksPerClass,
	}
}

func (c Config) validate() {
	if c.MinBlockSize == 0 || c.MinBlockSize&(c.MinBlockSize-1) != 0 {
		fatal("rcarena: MinBlockSize %d is not a power of two", c.MinBlockSize)
	}
	if c.InitialChunksPerClass < 0 {
		fatal("rcarena: InitialChunksPerClass %d must not be negative", c.InitialChunksPerClass)
	}
}
