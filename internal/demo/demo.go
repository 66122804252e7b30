// Package demo runs the driver scenario against an intlist.List: construct,
// append 2*i for every i below the requested count, read everything back, destroy.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/codex-k8s/intlist"
	"github.com/codex-k8s/intlist/alloc"
)

// Options configures a scenario run.
type Options struct {
	// Capacity is the initial list capacity.
	Capacity uint
	// Count is the number of values to append.
	Count int
	// Allocator backs the list; nil means the Go heap.
	Allocator alloc.Allocator
	// Logger receives progress records; nil discards them.
	Logger *slog.Logger
}

// Growth records a single capacity doubling.
type Growth struct {
	AtCount uint `yaml:"atCount"`
	From    uint `yaml:"from"`
	To      uint `yaml:"to"`
}

// Report is the outcome of a successful run.
type Report struct {
	InitialCount uint     `yaml:"initialCount"`
	Count        uint     `yaml:"count"`
	Capacity     uint     `yaml:"capacity"`
	Growth       []Growth `yaml:"growth,omitempty"`
	Values       []int    `yaml:"values"`
}

// StepError names the scenario step that failed.
type StepError struct {
	// Op is the list operation (new, count, capacity, append, get, destroy).
	Op string
	// Index is the value or element index involved, or -1.
	Index int
	// Err is the list error.
	Err error
}

func (e *StepError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s at index %d: %v", e.Op, e.Index, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Code returns the list error code behind the failure.
func (e *StepError) Code() intlist.Code {
	code, _ := intlist.CodeOf(e.Err)
	return code
}

// Run executes the scenario. On failure the list, if constructed, is destroyed
// before the *StepError is returned.
func Run(opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	list, err := intlist.New(opts.Capacity,
		intlist.WithAllocator(opts.Allocator),
		intlist.WithLogger(logger))
	if err != nil {
		return nil, &StepError{Op: "new", Index: -1, Err: err}
	}

	report, err := fill(list, opts.Count, logger)
	if err != nil {
		_ = list.Destroy()
		return nil, err
	}

	if err := list.Destroy(); err != nil {
		return nil, &StepError{Op: "destroy", Index: -1, Err: err}
	}
	logger.Debug("scenario finished", "count", report.Count, "capacity", report.Capacity)
	return report, nil
}

func fill(list *intlist.List, n int, logger *slog.Logger) (*Report, error) {
	report := &Report{}

	initial, err := list.Count()
	if err != nil {
		return nil, &StepError{Op: "count", Index: -1, Err: err}
	}
	report.InitialCount = initial

	for i := 0; i < n; i++ {
		before, err := list.Capacity()
		if err != nil {
			return nil, &StepError{Op: "capacity", Index: i, Err: err}
		}
		if list, err = list.Append(2 * i); err != nil {
			return nil, &StepError{Op: "append", Index: i, Err: err}
		}
		after, err := list.Capacity()
		if err != nil {
			return nil, &StepError{Op: "capacity", Index: i, Err: err}
		}
		if after != before {
			report.Growth = append(report.Growth, Growth{AtCount: uint(i), From: before, To: after})
			logger.Debug("list capacity changed", "at", i, "from", before, "to", after)
		}
	}

	if report.Count, err = list.Count(); err != nil {
		return nil, &StepError{Op: "count", Index: -1, Err: err}
	}
	if report.Capacity, err = list.Capacity(); err != nil {
		return nil, &StepError{Op: "capacity", Index: -1, Err: err}
	}

	report.Values = make([]int, 0, report.Count)
	for i := uint(0); i < report.Count; i++ {
		v, err := list.Get(i)
		if err != nil {
			return nil, &StepError{Op: "get", Index: int(i), Err: err}
		}
		report.Values = append(report.Values, v)
	}
	return report, nil
}
