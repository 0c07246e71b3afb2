package dictionary

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Backing selects the structure behind a Dictionary built by New.
type Backing int

const (
	// TreeBacking is an unbalanced binary search tree.
	TreeBacking Backing = iota
	// ListBacking is a sorted singly linked list.
	ListBacking
)

func (b Backing) String() string {
	switch b {
	case TreeBacking:
		return "tree"
	case ListBacking:
		return "list"
	default:
		return "unknown"
	}
}

// ParseBacking maps "tree" or "list" (case-insensitive) to a Backing.
func ParseBacking(s string) (Backing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tree", "bst":
		return TreeBacking, nil
	case "list":
		return ListBacking, nil
	default:
		return 0, errors.Newf("unknown backing %q", s)
	}
}

// Config holds the construction options for New.
type Config struct {
	backing      Backing
	metrics      *Metrics
	logger       zerolog.Logger
	loggerSet    bool
	synchronized bool
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values and applies opts.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		backing: TreeBacking,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Backing returns the configured backing structure.
func (c Config) Backing() Backing { return c.backing }

// WithBacking sets the backing structure.
func WithBacking(b Backing) Option {
	return func(c *Config) { c.backing = b }
}

// WithMetrics records operations into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) { c.metrics = m }
}

// WithLogger logs operations at debug level to l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) {
		c.logger = l
		c.loggerSet = true
	}
}

// WithSynchronization guards every operation with a read/write mutex.
func WithSynchronization() Option {
	return func(c *Config) { c.synchronized = true }
}
