// Package derive turns the session inputs into the text shown to the user.
//
// A Pipeline remembers the last (Configuration, moment) pair it saw and
// only calls the formatter when either one changes. Recomputation happens
// inside Update, so a caller never observes output from older inputs.
package derive

import (
	"fmt"
	"time"

	"github.com/five82/dtexplorer/internal/intl"
	"github.com/five82/dtexplorer/internal/logger"
	"github.com/five82/dtexplorer/internal/state"
)

// Output is the derived view of one (Configuration, moment) pair. When Err
// is set Display is empty; stale text is never carried over.
type Output struct {
	Display  string
	Err      error
	Resolved intl.ResolvedOptions
}

// OK reports whether formatting succeeded.
func (o Output) OK() bool { return o.Err == nil }

// Resolver is implemented by formatters that can report resolved options.
type Resolver interface {
	Resolve(locale string, opts intl.Options) (intl.ResolvedOptions, error)
}

// Pipeline memoises formatter output on its inputs.
type Pipeline struct {
	formatter intl.Formatter

	valid  bool
	config state.Configuration
	moment time.Time
	out    Output
	calls  int
}

// NewPipeline returns a pipeline that formats through f.
func NewPipeline(f intl.Formatter) *Pipeline {
	return &Pipeline{formatter: f}
}

// Update returns the output for cfg and moment, recomputing only when they
// differ from the previous call.
func (p *Pipeline) Update(cfg state.Configuration, moment time.Time) Output {
	if p.valid && cfg == p.config && sameMoment(moment, p.moment) {
		return p.out
	}
	p.config = cfg
	p.moment = moment
	p.out = Compute(p.formatter, cfg, moment)
	p.valid = true
	p.calls++
	return p.out
}

// Computations reports how many times the formatter has been invoked.
func (p *Pipeline) Computations() int { return p.calls }

// Compute formats cfg at moment without memoisation.
func Compute(f intl.Formatter, cfg state.Configuration, moment time.Time) Output {
	opts := FormatterOptions(cfg.Options)

	display, err := f.Format(cfg.Locale, opts, moment)
	if err != nil {
		logger.Debug("format failed", "locale", cfg.Locale, "options", len(opts), "error", err)
		return Output{Err: fmt.Errorf("format %s: %w", localeLabel(cfg.Locale), err)}
	}

	out := Output{Display: display}
	if r, ok := f.(Resolver); ok {
		if resolved, err := r.Resolve(cfg.Locale, opts); err == nil {
			out.Resolved = resolved
		}
	}
	return out
}

// FormatterOptions builds the formatter's options record. Only defined
// fields are present; hour12 is passed as a bool.
func FormatterOptions(opts state.Options) intl.Options {
	out := make(intl.Options, opts.Len())
	for _, e := range opts.Defined() {
		if e.Field.IsBool() {
			out[e.Field.Key()] = e.Value == "true"
			continue
		}
		out[e.Field.Key()] = e.Value
	}
	return out
}

func sameMoment(a, b time.Time) bool {
	return a.Equal(b) && a.Location() == b.Location()
}

func localeLabel(locale string) string {
	if locale == "" {
		return "(default locale)"
	}
	return locale
}
