package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/codex-k8s/intlist/internal/demo"
)

// renderValues prints the report the way the classic driver does.
func renderValues(w io.Writer, report *demo.Report) error {
	if _, err := fmt.Fprintf(w, "Initial count: %d\n", report.InitialCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Count after adds: %d\n", report.Count); err != nil {
		return err
	}
	for i, v := range report.Values {
		if _, err := fmt.Fprintf(w, "Value at index %d: %d\n", i, v); err != nil {
			return err
		}
	}
	return nil
}

// renderGrowth prints one line per capacity doubling followed by a summary.
func renderGrowth(w io.Writer, report *demo.Report) error {
	for _, g := range report.Growth {
		if _, err := fmt.Fprintf(w, "grow at count %d: %d -> %d\n", g.AtCount, g.From, g.To); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "final capacity %d for %d values\n", report.Capacity, report.Count)
	return err
}

func writeYAML(w io.Writer, report *demo.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encode report")
	}
	return errors.Wrap(enc.Close(), "encode report")
}
