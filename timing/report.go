// SPDX-License-Identifier: MIT

package timing

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Format selects the Reporter output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a Format outside {text, yaml}.
var ErrUnknownFormat = errors.New("timing: unknown report format")

// Text labels, one per pipeline, as printed by the reference program.
const (
	labelInteger = "Integer Matrix Multiplication Time Is :"
	labelDouble  = "Double Matrix Multiplication Time Is:"
)

// ParseFormat maps "text"/"yaml" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Label returns the human-readable line prefix for a pipeline kind.
func Label(k Kind) string {
	switch k {
	case KindInteger:
		return labelInteger
	case KindDouble:
		return labelDouble
	default:
		return fmt.Sprintf("%s Matrix Multiplication Time Is:", k)
	}
}

// FormatSeconds renders seconds as the shortest decimal that round-trips.
func FormatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// Line renders one text report line for a sample.
func Line(s Sample) string {
	return fmt.Sprintf("%s %s seconds", Label(s.Kind), FormatSeconds(s.Seconds()))
}

// Reporter writes samples to an output stream in the chosen format.
type Reporter struct {
	w      io.Writer
	format Format
}

// NewReporter validates the format and binds the writer.
func NewReporter(w io.Writer, format Format) (*Reporter, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	return &Reporter{w: w, format: format}, nil
}

// Meta carries run-level fields included in structured formats only.
type Meta struct {
	Dims   string `yaml:"dims"`
	Order  string `yaml:"order"`
	Seed   *int64 `yaml:"seed,omitempty"`
	Verify bool   `yaml:"verify"`
}

// yamlSample is the YAML row for one Sample.
type yamlSample struct {
	Kind    Kind    `yaml:"kind"`
	Order   string  `yaml:"order"`
	Seconds float64 `yaml:"seconds"`
	Elapsed string  `yaml:"elapsed"`
}

// yamlReport is the YAML document root.
type yamlReport struct {
	Meta    Meta         `yaml:"run"`
	Samples []yamlSample `yaml:"samples"`
}

// Write emits the samples. Text format prints one line per sample and
// ignores meta; YAML prints a single document.
func (r *Reporter) Write(meta Meta, samples []Sample) error {
	switch r.format {
	case FormatYAML:
		return r.writeYAML(meta, samples)
	default:
		return r.writeText(samples)
	}
}

func (r *Reporter) writeText(samples []Sample) error {
	for _, s := range samples {
		if _, err := fmt.Fprintln(r.w, Line(s)); err != nil {
			return fmt.Errorf("Reporter.Write: %w", err)
		}
	}

	return nil
}

func (r *Reporter) writeYAML(meta Meta, samples []Sample) error {
	doc := yamlReport{
		Meta: meta,
		Samples: lo.Map(samples, func(s Sample, _ int) yamlSample {
			return yamlSample{
				Kind:    s.Kind,
				Order:   s.Order,
				Seconds: s.Seconds(),
				Elapsed: s.Elapsed.String(),
			}
		}),
	}

	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("Reporter.Write: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("Reporter.Write: %w", err)
	}

	return nil
}
