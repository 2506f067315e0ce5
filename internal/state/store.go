package state

import (
	"time"
)

const defaultHistoryLimit = 64

// Snapshot represents the current session inputs handed to the UI.
type Snapshot struct {
	Config   Configuration
	Moment   time.Time
	Revision int // bumped on every change to Config or Moment
	CanUndo  bool
}

// Store owns the configuration and the selected moment for one session.
// It is driven from a single event loop and is not safe for concurrent use.
type Store struct {
	config   Configuration
	moment   time.Time
	revision int
	history  []Configuration
	limit    int
}

// NewStore creates a store with an empty configuration and the given moment.
// A zero moment is replaced with the current time.
func NewStore(moment time.Time) *Store {
	if moment.IsZero() {
		moment = time.Now()
	}
	return &Store{moment: moment, limit: defaultHistoryLimit}
}

// Dispatch applies action and reports whether the configuration changed.
// Only changing transitions are recorded for Undo.
func (s *Store) Dispatch(action Action) bool {
	next := Reduce(s.config, action)
	if next == s.config {
		return false
	}
	s.pushHistory(s.config)
	s.config = next
	s.revision++
	return true
}

// SetMoment replaces the selected moment. Zero times are ignored.
func (s *Store) SetMoment(t time.Time) bool {
	if t.IsZero() || t.Equal(s.moment) && t.Location() == s.moment.Location() {
		return false
	}
	s.moment = t
	s.revision++
	return true
}

// Undo restores the configuration that preceded the last change.
func (s *Store) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := len(s.history) - 1
	s.config = s.history[last]
	s.history = s.history[:last]
	s.revision++
	return true
}

// Snapshot returns a copy of the current inputs.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Config:   s.config,
		Moment:   s.moment,
		Revision: s.revision,
		CanUndo:  len(s.history) > 0,
	}
}

func (s *Store) pushHistory(cfg Configuration) {
	limit := s.limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if len(s.history) >= limit {
		s.history = append(s.history[:0], s.history[1:]...)
	}
	s.history = append(s.history, cfg)
}
