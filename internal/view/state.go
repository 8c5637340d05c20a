// Package view holds the in-memory post table: the master list, the
// derived filtered list, the current query and the load error.
//
// State is a value. Every transition returns a new State and leaves the
// receiver (and any slice it handed out) untouched.
package view

import (
	"github.com/Makepad-fr/postview/internal/model"
)

// State is one snapshot of the table.
type State struct {
	master   []model.Record
	filtered []model.Record
	query    string
	err      error
	loaded   bool
	selected string
}

// New returns the empty pre-load state.
func New() State {
	return State{
		master:   []model.Record{},
		filtered: []model.Record{},
	}
}

func (s State) Master() []model.Record   { return clone(s.master) }
func (s State) Filtered() []model.Record { return clone(s.filtered) }
func (s State) Query() string            { return s.query }
func (s State) Err() error               { return s.err }
func (s State) IsLoaded() bool           { return s.loaded }
func (s State) Selected() string         { return s.selected }

// Len reports the size of the master list.
func (s State) Len() int { return len(s.master) }

// Loaded replaces both lists with records in the order received and clears
// any previous error. A repeated id keeps its first occurrence only.
func (s State) Loaded(records []model.Record) State {
	seen := make(map[int]struct{}, len(records))
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	s.master = out
	s.filtered = clone(out)
	s.err = nil
	s.loaded = true
	return s
}

// LoadFailed records the failure and keeps the current lists.
func (s State) LoadFailed(cause error) State {
	s.err = newLoadFailure(cause)
	s.loaded = true
	return s
}

// WithQuery sets the query and recomputes the filtered list from master.
func (s State) WithQuery(q string) State {
	s.query = q
	s.filtered = Filter(s.master, q)
	return s
}

// Delete drops the record with the given id from master. The filtered list
// is reset to the new master without re-applying the query; the query text
// is kept as is. Deleting an unknown id returns s unchanged and false.
func (s State) Delete(id int) (State, bool) {
	idx := -1
	for i, r := range s.master {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, false
	}
	next := make([]model.Record, 0, len(s.master)-1)
	next = append(next, s.master[:idx]...)
	next = append(next, s.master[idx+1:]...)
	s.master = next
	s.filtered = clone(next)
	return s, true
}

// Edit is an extension point. It never changes state; callers surface the
// request as a diagnostic. It reports whether id is in master.
func (s State) Edit(id int) (State, bool) {
	_, ok := s.Find(id)
	return s, ok
}

// Find returns the master record with the given id.
func (s State) Find(id int) (model.Record, bool) {
	for _, r := range s.master {
		if r.ID == id {
			return r, true
		}
	}
	return model.Record{}, false
}

func clone(in []model.Record) []model.Record {
	out := make([]model.Record, len(in))
	copy(out, in)
	return out
}
