// Package store owns the authoritative sparse map of cell coordinates
// to full cell state. Producer adapters submit partial updates; the
// store merges them field by field and publishes the minimal change-set
// once per update call.
package store

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/event"
	"github.com/tabulab/cellstate/logging"
)

// Changed is published once per mutating call, carrying every
// coordinate whose stored state actually changed, sorted by row then
// column. It is never split into per-cell events: a correction pass may
// touch thousands of cells and must not trigger thousands of refreshes.
type Changed struct {
	Coords []cell.Coordinate
}

// Store is the single source of truth for per-cell state. It is sparse:
// a coordinate without an entry holds the default state, and entries
// that merge back to the default are deleted.
//
// The store performs no locking. All calls must come from the one
// goroutine that owns the table session; producer results are marshalled
// onto that goroutine by the surrounding application.
type Store struct {
	log        *logrus.Entry
	states     map[cell.Coordinate]cell.FullState
	headers    HeaderMap
	generation uint64
	changed    event.Stream[Changed]
}

// New creates an empty store with no columns. Call RebuildHeaderMap
// once the dataset's column set is known.
func New() *Store {
	return &Store{
		log:    logging.NewLogger("state-store"),
		states: make(map[cell.Coordinate]cell.FullState),
	}
}

// OnChanged subscribes to change-set notifications. The returned
// function unsubscribes.
func (s *Store) OnChanged(fn func(Changed)) func() {
	return s.changed.Subscribe(fn)
}

// UpdateStates merges a batch of partial updates and returns the
// coordinates whose state actually changed, sorted by row then column.
// Unspecified fields of each partial are preserved from the stored
// value (or the default when nothing is stored). Coordinates whose
// merged state equals the current one are dropped from the result, so
// submitting the same batch twice yields an empty second change-set.
//
// One Changed event is published per call when the change-set is
// non-empty; no event is published for an all-no-op batch.
func (s *Store) UpdateStates(changes map[cell.Coordinate]cell.Partial) []cell.Coordinate {
	var changed []cell.Coordinate
	for coord, partial := range changes {
		cur := s.states[coord]
		merged := partial.Apply(cur)
		if merged.Equal(cur) {
			continue
		}
		if merged.IsZero() {
			delete(s.states, coord)
		} else {
			s.states[coord] = merged
		}
		changed = append(changed, coord)
	}

	if len(changed) == 0 {
		return nil
	}

	sortCoords(changed)
	s.log.WithFields(logrus.Fields{
		"submitted": len(changes),
		"changed":   len(changed),
	}).Debug("Applied state update batch")
	s.changed.Publish(Changed{Coords: changed})
	return changed
}

// GetState returns the state stored for a coordinate, or the default
// state when none is stored. It never fails.
func (s *Store) GetState(coord cell.Coordinate) cell.FullState {
	return s.states[coord]
}

// Len returns the number of non-default entries currently stored.
func (s *Store) Len() int {
	return len(s.states)
}

// HeaderMap returns the current column-name-to-index mapping.
func (s *Store) HeaderMap() HeaderMap {
	return s.headers
}

// Generation returns the header-map generation. It increments on every
// RebuildHeaderMap and Clear, letting adapters discard producer results
// computed against an older column layout.
func (s *Store) Generation() uint64 {
	return s.generation
}

// RebuildHeaderMap replaces the column mapping and clears all stored
// state. Every previously non-default coordinate is published as
// changed (it reverts to default), so consumers repaint fully once,
// deliberately, instead of silently going stale.
func (s *Store) RebuildHeaderMap(columnNames []string) {
	s.headers = NewHeaderMap(columnNames)
	s.log.WithField("columns", len(columnNames)).Debug("Rebuilt header map")
	s.reset()
}

// Clear empties the store, publishing the prior non-default coordinate
// set. The header map is kept.
func (s *Store) Clear() {
	s.reset()
}

func (s *Store) reset() {
	s.generation++
	if len(s.states) == 0 {
		return
	}
	cleared := make([]cell.Coordinate, 0, len(s.states))
	for coord := range s.states {
		cleared = append(cleared, coord)
	}
	s.states = make(map[cell.Coordinate]cell.FullState)
	sortCoords(cleared)
	s.changed.Publish(Changed{Coords: cleared})
}

func sortCoords(coords []cell.Coordinate) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
}
