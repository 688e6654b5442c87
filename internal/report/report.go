// Package report renders hunt results and candidate lists for humans and
// machines.
package report

import (
	"fmt"
	"io"
	"lookalike/pkg/domain"
	"lookalike/pkg/serrors"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/go-faster/jx"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", serrors.With(serrors.ErrInvalidConfig, "unknown output format %q (want text, json or yaml)", s)
	}
}

// Options control rendering.
type Options struct {
	Format Format
	// Color enables ANSI colors in the text format.
	Color bool
}

// Writer renders reports to an io.Writer.
type Writer struct {
	out  io.Writer
	opts Options
}

// NewWriter creates a Writer. An empty format means text.
func NewWriter(out io.Writer, opts Options) *Writer {
	if opts.Format == "" {
		opts.Format = FormatText
	}

	return &Writer{out: out, opts: opts}
}

// Report writes the resolved domains of r. The text format prints one
// "domain address" line per result; structured formats include the summary.
func (w *Writer) Report(r *domain.Report) error {
	switch w.opts.Format {
	case FormatJSON:
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)
		e.SetIdent(2)
		EncodeReport(e, r)
		e.RawStr("\n")

		return write(w.out, e.Bytes())
	case FormatYAML:
		return w.yaml(newReportDoc(r))
	default:
		tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
		name := w.color(color.FgRed, color.Bold)
		for _, res := range r.Results {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", name.Sprint(res.Domain), res.Address); err != nil {
				return fmt.Errorf("could not write result: %w", err)
			}
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("could not flush results: %w", err)
		}

		return nil
	}
}

// Summary writes a short human readable digest of s. It is meant for a
// terminal and ignores the configured format.
func (w *Writer) Summary(s domain.Summary) error {
	label := w.color(color.Faint)
	hit := w.color(color.FgGreen, color.Bold)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d  %s %s  %s %d  %s %d",
		label.Sprint("looked up"), s.Dispatched,
		label.Sprint("resolved"), hit.Sprint(s.Resolved),
		label.Sprint("not registered"), s.NotRegistered,
		label.Sprint("failed"), s.Transient)
	if len(s.TransientReasons) > 0 {
		reasons := make([]string, 0, len(s.TransientReasons))
		for _, k := range sortedKeys(s.TransientReasons) {
			reasons = append(reasons, fmt.Sprintf("%s=%d", k, s.TransientReasons[k]))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(reasons, ", "))
	}
	fmt.Fprintf(&b, "  %s %s\n", label.Sprint("in"), s.Elapsed.Round(time.Millisecond))

	return write(w.out, []byte(b.String()))
}

// Candidates writes the candidate domains of a dry run together with the
// seed and strategy each one came from.
func (w *Writer) Candidates(candidates []domain.CandidateDomain) error {
	switch w.opts.Format {
	case FormatJSON:
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)
		e.SetIdent(2)
		e.ArrStart()
		for _, c := range candidates {
			EncodeCandidate(e, c)
		}
		e.ArrEnd()
		e.RawStr("\n")

		return write(w.out, e.Bytes())
	case FormatYAML:
		if candidates == nil {
			candidates = []domain.CandidateDomain{}
		}

		return w.yaml(struct {
			Candidates []domain.CandidateDomain `yaml:"candidates"`
		}{Candidates: candidates})
	default:
		tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
		tag := w.color(color.Faint)
		for _, c := range candidates {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Domain, tag.Sprint(c.Strategy), tag.Sprint(c.Seed)); err != nil {
				return fmt.Errorf("could not write candidate: %w", err)
			}
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("could not flush candidates: %w", err)
		}

		return nil
	}
}

func (w *Writer) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if w.opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

func (w *Writer) yaml(v any) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not close yaml encoder: %w", err)
	}

	return nil
}

func write(out io.Writer, b []byte) error {
	if _, err := out.Write(b); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)

	return keys
}

// reportDoc is the YAML shape of a report; durations are rendered as text.
type reportDoc struct {
	ID         string               `yaml:"id"`
	Seeds      []string             `yaml:"seeds"`
	Zones      []string             `yaml:"zones"`
	Strategies []string             `yaml:"strategies"`
	Candidates int                  `yaml:"candidates"`
	Results    []domain.ResultEntry `yaml:"results"`
	Summary    summaryDoc           `yaml:"summary"`
}

type summaryDoc struct {
	Dispatched       int            `yaml:"dispatched"`
	Resolved         int            `yaml:"resolved"`
	NotRegistered    int            `yaml:"notRegistered"`
	Transient        int            `yaml:"transient"`
	TransientReasons map[string]int `yaml:"transientReasons,omitempty"`
	Elapsed          string         `yaml:"elapsed"`
}

func newReportDoc(r *domain.Report) reportDoc {
	results := r.Results
	if results == nil {
		results = []domain.ResultEntry{}
	}

	return reportDoc{
		ID:         r.ID,
		Seeds:      r.Seeds,
		Zones:      r.Zones,
		Strategies: r.Strategies,
		Candidates: r.Candidates,
		Results:    results,
		Summary: summaryDoc{
			Dispatched:       r.Summary.Dispatched,
			Resolved:         r.Summary.Resolved,
			NotRegistered:    r.Summary.NotRegistered,
			Transient:        r.Summary.Transient,
			TransientReasons: r.Summary.TransientReasons,
			Elapsed:          r.Summary.Elapsed.String(),
		},
	}
}
