// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by Write for an unsupported format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Write renders s in the given format (empty means text).
func Write(w io.Writer, s Summary, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return WriteText(w, s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

var statusMark = map[string]string{SizeExact: "=", SizeNear: "~", SizeOff: "!"}

// WriteText renders the human-readable report.
func WriteText(w io.Writer, s Summary) error {
	var b strings.Builder
	if len(s.Warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, msg := range s.Warnings {
			fmt.Fprintf(&b, "  %s\n", msg)
		}
		b.WriteString("\n")
	}

	b.WriteString("Results\n")
	fmt.Fprintf(&b, "  Satisfaction: %.1f%%\n", 100*s.Satisfaction)
	fmt.Fprintf(&b, "  Raw score: %.1f\n", s.RawScore)
	fmt.Fprintf(&b, "  Groups: %d | Sizes: %v | Target: %d\n", len(s.Groups), s.Sizes, s.Target)
	fmt.Fprintf(&b, "  Size balance: avg=%.1f variance=%.2f balance=%.1f%%\n", s.AvgSize, s.SizeVariance, 100*s.BalanceScore)
	if s.Strategy != "" {
		fmt.Fprintf(&b, "  Best attempt: %d (%s", s.Attempt, s.Strategy)
		if s.Fallback {
			b.WriteString(", after fallback")
		}
		b.WriteString(")\n")
	}

	for _, g := range s.Groups {
		fmt.Fprintf(&b, "\n[%s] Group %d: %s (%d people)\n", statusMark[g.Status], g.Number, strings.Join(g.Members, ", "), len(g.Members))
		if len(g.Members) < 2 {
			continue
		}
		if len(g.Links) == 0 {
			b.WriteString("  No direct affinity\n")
			continue
		}
		fmt.Fprintf(&b, "  Points exchanged: %.1f\n", g.Points)
		for _, l := range g.Links {
			switch {
			case l.Mutual:
				fmt.Fprintf(&b, "  %s <-> %s (mutual: %.1f <-> %.1f)\n", l.From, l.To, l.FromTo, l.ToFrom)
			case l.FromTo > 0:
				fmt.Fprintf(&b, "  %s -> %s (%.1f)\n", l.From, l.To, l.FromTo)
			default:
				fmt.Fprintf(&b, "  %s -> %s (%.1f)\n", l.To, l.From, l.ToFrom)
			}
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}
