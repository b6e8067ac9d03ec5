package vector

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	// DefaultInitialCapacity is the first capacity a vector grows to.
	DefaultInitialCapacity = 8
	// LowMemoryInitialCapacity replaces DefaultInitialCapacity when
	// Config.LowMemory is set.
	LowMemoryInitialCapacity = 4
	// DefaultMaxCapacity bounds the number of elements a vector may hold.
	DefaultMaxCapacity = math.MaxInt32
)

// Config controls the growth engine of heap-backed vectors.
type Config struct {
	// InitialCapacity is used when an empty vector first grows. Zero selects
	// the default for the chosen growth profile.
	InitialCapacity int `yaml:"initial_capacity"`
	// LowMemory grows by 1.5x instead of 2x, trading reallocations for
	// less slack.
	LowMemory bool `yaml:"low_memory"`
	// MaxCapacity is the largest capacity ensureCapacity will plan for.
	MaxCapacity int `yaml:"max_capacity"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		MaxCapacity:     DefaultMaxCapacity,
	}
}

// RegisterFlags registers the growth flags under the "vector." prefix.
func (cfg *Config) RegisterFlags(f *pflag.FlagSet) {
	f.IntVar(&cfg.InitialCapacity, "vector.initial-capacity", DefaultInitialCapacity, "Capacity an empty vector grows to on first insertion.")
	f.BoolVar(&cfg.LowMemory, "vector.low-memory", false, "Grow by 1.5x instead of 2x.")
	f.IntVar(&cfg.MaxCapacity, "vector.max-capacity", DefaultMaxCapacity, "Largest capacity a vector may grow to.")
}

// Validate checks the configuration for inconsistencies.
func (cfg *Config) Validate() error {
	if cfg.InitialCapacity < 0 {
		return errors.Errorf("initial capacity must not be negative, got %d", cfg.InitialCapacity)
	}
	if cfg.MaxCapacity < 0 {
		return errors.Errorf("max capacity must not be negative, got %d", cfg.MaxCapacity)
	}
	if cfg.MaxCapacity > 0 && cfg.initialCapacity() > cfg.MaxCapacity {
		return errors.Errorf("initial capacity %d exceeds max capacity %d", cfg.initialCapacity(), cfg.MaxCapacity)
	}
	return nil
}

func (cfg *Config) initialCapacity() int {
	if cfg.InitialCapacity > 0 {
		return cfg.InitialCapacity
	}
	if cfg.LowMemory {
		return LowMemoryInitialCapacity
	}
	return DefaultInitialCapacity
}

func (cfg *Config) maxCapacity() int {
	if cfg.MaxCapacity > 0 {
		return cfg.MaxCapacity
	}
	return DefaultMaxCapacity
}

// PoolConfig sizes a fixed-slot pool.
type PoolConfig struct {
	Slots int `yaml:"slots"`
	Width int `yaml:"width"`
}

// RegisterFlags registers the pool flags under the "pool." prefix.
func (cfg *PoolConfig) RegisterFlags(f *pflag.FlagSet) {
	f.IntVar(&cfg.Slots, "pool.slots", 16, "Number of slots in the pool.")
	f.IntVar(&cfg.Width, "pool.width", 64, "Elements per slot.")
}

// Validate checks that the pool has at least one slot of non-zero width.
func (cfg *PoolConfig) Validate() error {
	if cfg.Slots <= 0 {
		return errors.Errorf("pool slots must be positive, got %d", cfg.Slots)
	}
	if cfg.Width <= 0 {
		return errors.Errorf("pool width must be positive, got %d", cfg.Width)
	}
	return nil
}
