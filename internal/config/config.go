// Package config loads the intlist driver settings from INTLIST_* variables and .env files.
package config

import (
	"slices"
	"strings"

	envparse "github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/codex-k8s/intlist/alloc"
	"github.com/codex-k8s/intlist/internal/env"
)

// Prefix is prepended to every variable name read by Load.
const Prefix = "INTLIST_"

const (
	// AllocatorHeap selects the Go heap allocator.
	AllocatorHeap = "heap"
	// AllocatorManual selects the off-heap modernc.org/memory allocator.
	AllocatorManual = "manual"
)

const (
	// OutputText prints one line per value, like the classic driver.
	OutputText = "text"
	// OutputYAML prints the full report as a YAML document.
	OutputYAML = "yaml"
	// OutputLog routes the text lines through the structured logger.
	OutputLog = "log"
)

// Config holds the driver settings.
type Config struct {
	// Capacity is the initial list capacity from INTLIST_CAPACITY.
	Capacity uint `env:"CAPACITY" envDefault:"4"`
	// Count is the number of values appended from INTLIST_COUNT.
	Count int `env:"COUNT" envDefault:"20"`
	// Allocator names the backing allocator from INTLIST_ALLOCATOR.
	Allocator string `env:"ALLOCATOR" envDefault:"heap"`
	// MaxElems caps a single buffer from INTLIST_MAX_ELEMS; zero means no cap.
	MaxElems int `env:"MAX_ELEMS"`
	// Output is the report format from INTLIST_OUTPUT.
	Output string `env:"OUTPUT" envDefault:"text"`
	// LogLevel is the logging level from INTLIST_LOG_LEVEL.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadOptions controls where Load reads variables from.
type LoadOptions struct {
	// BaseDir resolves relative EnvFiles.
	BaseDir string
	// EnvFiles are .env files merged in order; the process environment wins over them.
	EnvFiles []string
	// Environment replaces the process environment when non-nil.
	Environment env.Vars
}

// Load builds a Config from defaults, env files and the environment, then validates it.
func Load(opts LoadOptions) (*Config, error) {
	fileVars, err := env.LoadEnvFiles(opts.BaseDir, opts.EnvFiles)
	if err != nil {
		return nil, err
	}
	procVars := opts.Environment
	if procVars == nil {
		procVars = env.FromOS()
	}

	var cfg Config
	if err := envparse.ParseWithOptions(&cfg, envparse.Options{
		Environment: env.Merge(fileVars, procVars),
		Prefix:      Prefix,
	}); err != nil {
		return nil, errors.Wrap(err, "parse INTLIST_* variables")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize lower-cases and trims the enumerated settings.
func (c *Config) Normalize() {
	c.Allocator = strings.ToLower(strings.TrimSpace(c.Allocator))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
}

// Validate rejects settings the driver cannot act on. A zero capacity is
// accepted here and left for the list to refuse.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return errors.Errorf("count must not be negative, got %d", c.Count)
	}
	if c.MaxElems < 0 {
		return errors.Errorf("max-elems must not be negative, got %d", c.MaxElems)
	}
	if !slices.Contains([]string{AllocatorHeap, AllocatorManual}, c.Allocator) {
		return errors.Errorf("unsupported allocator %q (want %s or %s)", c.Allocator, AllocatorHeap, AllocatorManual)
	}
	if !slices.Contains([]string{OutputText, OutputYAML, OutputLog}, c.Output) {
		return errors.Errorf("unsupported output %q (want %s, %s or %s)", c.Output, OutputText, OutputYAML, OutputLog)
	}
	return nil
}

// NewAllocator builds the configured allocator. The returned release func must
// be called once every list using the allocator has been destroyed.
func (c *Config) NewAllocator() (alloc.Allocator, func() error, error) {
	switch c.Allocator {
	case AllocatorHeap, "":
		return alloc.Heap{MaxElems: c.MaxElems}, func() error { return nil }, nil
	case AllocatorManual:
		m := alloc.NewManual()
		m.MaxElems = c.MaxElems
		return m, m.Close, nil
	default:
		return nil, nil, errors.Errorf("unsupported allocator %q", c.Allocator)
	}
}
