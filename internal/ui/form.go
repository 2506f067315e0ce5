package ui

import (
	"slices"
	"time"

	"github.com/five82/dtexplorer/internal/catalog"
	"github.com/five82/dtexplorer/internal/state"
)

type rowKind int

const (
	rowLocale rowKind = iota
	rowExtension
	rowOption
	rowDate
	rowTime
)

// row is one line of the form.
type row struct {
	kind  rowKind
	ext   state.ExtensionKind
	field state.Field
	label string
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// formRows lists the form top to bottom: locale, its extensions, every
// option in record order, then the moment.
func formRows() []row {
	rows := []row{
		{kind: rowLocale, label: "locale"},
		{kind: rowExtension, ext: state.ExtNumberingSystem, label: "  -u-nu"},
		{kind: rowExtension, ext: state.ExtCalendar, label: "  -u-ca"},
		{kind: rowExtension, ext: state.ExtHourCycle, label: "  -u-hc"},
	}
	for _, f := range state.Fields() {
		rows = append(rows, row{kind: rowOption, field: f, label: f.Key()})
	}
	return append(rows,
		row{kind: rowDate, label: "date"},
		row{kind: rowTime, label: "time"},
	)
}

// value returns what the row currently shows and whether it is set.
func (r row) value(snap state.Snapshot) (string, bool) {
	cfg := snap.Config
	switch r.kind {
	case rowLocale:
		base := cfg.BaseLocale()
		return base, base != ""
	case rowExtension:
		return cfg.ExtensionValue(r.ext)
	case rowOption:
		return cfg.Options.Get(r.field)
	case rowDate:
		return snap.Moment.Format(dateLayout), true
	case rowTime:
		return snap.Moment.Format(timeLayout), true
	}
	return "", false
}

// disabled reports whether the row cannot be edited right now.
func (r row) disabled(cfg state.Configuration) bool {
	return r.kind == rowExtension && cfg.BaseLocale() == ""
}

// clearable reports whether the row accepts the clear sentinel.
func (r row) clearable() bool {
	return r.kind != rowDate && r.kind != rowTime
}

// choices returns the picker entries, starting with the clear entry.
func (r row) choices() []pickerItem {
	items := []pickerItem{{value: state.Clear, title: "undefined (clear)"}}
	switch r.kind {
	case rowLocale:
		for _, l := range catalog.Locales() {
			items = append(items, pickerItem{value: l.Tag, title: l.Tag, desc: l.Title()})
		}
		return items
	case rowExtension:
		for _, v := range catalog.ExtensionValues(r.ext) {
			items = append(items, pickerItem{value: v, title: v})
		}
		return items
	case rowOption:
		for _, v := range catalog.OptionValues(r.field) {
			items = append(items, pickerItem{value: v, title: v})
		}
		return items
	}
	return nil
}

// action builds the transition for choosing value on this row.
func (r row) action(value string) state.Action {
	switch r.kind {
	case rowLocale:
		return state.SetLocale{Value: value}
	case rowExtension:
		return state.SetLocaleExtension{Kind: r.ext, Value: value}
	case rowOption:
		if r.field == state.Hour12 {
			switch value {
			case "true":
				return state.SetUse12Hour{Value: true}
			case "false":
				return state.SetUse12Hour{Value: false}
			default:
				return state.ClearUse12Hour{}
			}
		}
		return state.SetOption{Field: r.field, Value: value}
	}
	return nil
}

// step returns the action that moves the row delta places through its
// choices, wrapping around. The clear entry is part of the cycle.
func (r row) step(snap state.Snapshot, delta int) state.Action {
	if r.kind == rowLocale || !r.clearable() {
		return nil
	}
	items := r.choices()
	current, ok := r.value(snap)
	idx := 0
	if ok {
		idx = slices.IndexFunc(items, func(it pickerItem) bool { return it.value == current })
		if idx < 0 {
			idx = 0
		}
	}
	next := (idx + delta + len(items)) % len(items)
	return r.action(items[next].value)
}

// shiftMoment moves the moment by one day on the date row and one hour on
// the time row.
func (r row) shiftMoment(t time.Time, delta int) (time.Time, bool) {
	switch r.kind {
	case rowDate:
		return t.AddDate(0, 0, delta), true
	case rowTime:
		return t.Add(time.Duration(delta) * time.Hour), true
	}
	return t, false
}
