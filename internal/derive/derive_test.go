package derive

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/dtexplorer/internal/intl"
	"github.com/five82/dtexplorer/internal/state"
)

var march15 = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

type recordingFormatter struct {
	calls  int
	locale string
	opts   intl.Options
	err    error
}

func (r *recordingFormatter) Format(locale string, opts intl.Options, _ time.Time) (string, error) {
	r.calls++
	r.locale = locale
	r.opts = opts
	if r.err != nil {
		return "", r.err
	}
	return "formatted", nil
}

func TestFormatterOptionsOnlyDefinedKeys(t *testing.T) {
	cfg := state.Reduce(state.Configuration{}, state.SetOption{Field: state.Year, Value: "numeric"})
	cfg = state.Reduce(cfg, state.SetOption{Field: state.Month, Value: "long"})
	cfg = state.Reduce(cfg, state.SetOption{Field: state.Month, Value: state.Clear})
	cfg = state.Reduce(cfg, state.SetUse12Hour{Value: false})

	opts := FormatterOptions(cfg.Options)
	if len(opts) != 2 {
		t.Fatalf("opts = %v", opts)
	}
	if _, ok := opts["month"]; ok {
		t.Fatal("cleared month must be absent")
	}
	if opts["year"] != "numeric" {
		t.Fatalf("year = %v", opts["year"])
	}
	if v, ok := opts["hour12"].(bool); !ok || v {
		t.Fatalf("hour12 = %#v", opts["hour12"])
	}
}

func TestPipelineMemoisesOnInputs(t *testing.T) {
	f := &recordingFormatter{}
	p := NewPipeline(f)
	cfg := state.Reduce(state.Configuration{}, state.SetLocale{Value: "en-US"})

	p.Update(cfg, march15)
	p.Update(cfg, march15)
	if f.calls != 1 {
		t.Fatalf("calls = %d, want 1", f.calls)
	}

	p.Update(cfg, march15.Add(time.Second))
	if f.calls != 2 {
		t.Fatalf("calls after moment change = %d, want 2", f.calls)
	}

	cfg = state.Reduce(cfg, state.SetOption{Field: state.DateStyle, Value: "full"})
	p.Update(cfg, march15.Add(time.Second))
	if f.calls != 3 || p.Computations() != 3 {
		t.Fatalf("calls after config change = %d, want 3", f.calls)
	}
	if f.locale != "en-US" || f.opts["dateStyle"] != "full" {
		t.Fatalf("formatter saw %q %v", f.locale, f.opts)
	}
}

func TestPipelineErrorClearsDisplay(t *testing.T) {
	f := &recordingFormatter{}
	p := NewPipeline(f)

	ok := p.Update(state.Configuration{}, march15)
	if ok.Display != "formatted" || !ok.OK() {
		t.Fatalf("unexpected output %+v", ok)
	}

	f.err = &intl.TypeError{Option: "year", Msg: "conflict"}
	cfg := state.Reduce(state.Configuration{}, state.SetOption{Field: state.Year, Value: "numeric"})
	out := p.Update(cfg, march15)
	if out.Display != "" || out.OK() {
		t.Fatalf("expected error output, got %+v", out)
	}
	var te *intl.TypeError
	if !errors.As(out.Err, &te) {
		t.Fatalf("error %v does not wrap TypeError", out.Err)
	}
}

func TestGoldenFullDateStyle(t *testing.T) {
	p := NewPipeline(intl.Engine{DefaultZone: time.UTC})
	cfg := state.Reduce(state.Configuration{}, state.SetLocale{Value: "en-US"})
	cfg = state.Reduce(cfg, state.SetOption{Field: state.DateStyle, Value: "full"})

	out := p.Update(cfg, march15)
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Display != "Friday, March 15, 2024" {
		t.Fatalf("got %q", out.Display)
	}
	if out.Resolved.Locale != "en-US" || out.Resolved.DateStyle != "full" {
		t.Fatalf("resolved %+v", out.Resolved)
	}
}

func TestEmptyConfigurationMatchesDefaultFormat(t *testing.T) {
	engine := intl.Engine{DefaultZone: time.UTC}
	want, err := engine.Format("", intl.Options{}, march15)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	out := NewPipeline(engine).Update(state.Configuration{}, march15)
	if out.Display != want {
		t.Fatalf("got %q, want %q", out.Display, want)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	engine := intl.Engine{DefaultZone: time.UTC}
	cfg := state.Reduce(state.Configuration{}, state.SetLocale{Value: "de-DE"})
	cfg = state.Reduce(cfg, state.SetLocaleExtension{Kind: state.ExtCalendar, Value: "buddhist"})
	cfg = state.Reduce(cfg, state.SetOption{Field: state.Weekday, Value: "long"})

	first := Compute(engine, cfg, march15)
	second := Compute(engine, cfg, march15)
	if first.Display != second.Display || first.Err != nil {
		t.Fatalf("outputs differ: %+v vs %+v", first, second)
	}
}
