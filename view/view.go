// Package view bridges store change events into the minimal
// invalidation a table display needs, and exposes the read-only
// accessors consumers use. Consumers never see the store itself; the
// Reader interface is the enforcement of the one-writer rule.
package view

import (
	"github.com/sirupsen/logrus"

	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/event"
	"github.com/tabulab/cellstate/logging"
	"github.com/tabulab/cellstate/store"
)

// Aspect is a bit set of the logical cell aspects a change touched.
// Consumers refresh only the paint/role data behind the flagged
// aspects instead of re-querying everything.
type Aspect uint8

const (
	// AspectVisual: the displayed state (color/marker) changed.
	AspectVisual Aspect = 1 << iota
	// AspectTooltip: the error detail shown on hover changed.
	AspectTooltip
	// AspectActionability: whether the cell has pending suggestions changed.
	AspectActionability
)

// Has reports whether all flags in f are set.
func (a Aspect) Has(f Aspect) bool {
	return a&f == f
}

// RowRun is a contiguous run of changed cells within one row,
// inclusive of both end columns.
type RowRun struct {
	Row      int
	StartCol int
	EndCol   int
}

// Invalidation is published once per store change event. Coords is the
// raw changed coordinate set; Runs is the same set grouped into
// contiguous per-row column runs for displays that repaint by range.
type Invalidation struct {
	Coords  []cell.Coordinate
	Runs    []RowRun
	Aspects Aspect
}

// Reader is the read-only surface handed to consumers (renderers,
// context-menu builders). Nothing on it can mutate cell state.
type Reader interface {
	// StateAt returns the state for a cell; always succeeds.
	StateAt(row, col int) cell.FullState
	// HeaderMap resolves column names to indices.
	HeaderMap() store.HeaderMap
	// OnInvalidate subscribes to display invalidations and returns an
	// unsubscribe function.
	OnInvalidate(fn func(Invalidation)) func()
}

// Model is the table view model. It subscribes to the store, keeps a
// shadow of the last state it reported per coordinate so it can tell
// which aspects changed, and republishes each change-set as one
// Invalidation.
type Model struct {
	store       *store.Store
	log         *logrus.Entry
	shadow      map[cell.Coordinate]cell.FullState
	invalidate  event.Stream[Invalidation]
	unsubscribe func()
}

var _ Reader = (*Model)(nil)

// New creates a view model bound to a store.
func New(s *store.Store) *Model {
	m := &Model{
		store:  s,
		log:    logging.NewLogger("table-view"),
		shadow: make(map[cell.Coordinate]cell.FullState),
	}
	m.unsubscribe = s.OnChanged(m.onChanged)
	return m
}

// Close detaches the view model from the store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// StateAt returns the current state for a cell, default when none.
func (m *Model) StateAt(row, col int) cell.FullState {
	return m.store.GetState(cell.Coordinate{Row: row, Col: col})
}

// HeaderMap returns the store's current column mapping.
func (m *Model) HeaderMap() store.HeaderMap {
	return m.store.HeaderMap()
}

// OnInvalidate subscribes to display invalidations.
func (m *Model) OnInvalidate(fn func(Invalidation)) func() {
	return m.invalidate.Subscribe(fn)
}

func (m *Model) onChanged(ev store.Changed) {
	var aspects Aspect
	for _, coord := range ev.Coords {
		old := m.shadow[coord]
		now := m.store.GetState(coord)
		aspects |= diffAspects(old, now)
		if now.IsZero() {
			delete(m.shadow, coord)
		} else {
			m.shadow[coord] = now
		}
	}
	if aspects == 0 {
		// The store only reports real changes, so every event should
		// carry at least one aspect; guard anyway.
		return
	}

	inv := Invalidation{
		Coords:  ev.Coords,
		Runs:    groupRuns(ev.Coords),
		Aspects: aspects,
	}
	m.log.WithFields(logrus.Fields{
		"cells": len(inv.Coords),
		"runs":  len(inv.Runs),
	}).Debug("Publishing display invalidation")
	m.invalidate.Publish(inv)
}

func diffAspects(old, now cell.FullState) Aspect {
	var a Aspect
	if old.DisplayStatus() != now.DisplayStatus() {
		a |= AspectVisual
	}
	if old.Detail != now.Detail {
		a |= AspectTooltip
	}
	if old.Actionable() != now.Actionable() {
		a |= AspectActionability
	}
	return a
}

// groupRuns folds a row-then-column sorted coordinate list into
// contiguous per-row column runs.
func groupRuns(coords []cell.Coordinate) []RowRun {
	var runs []RowRun
	for _, c := range coords {
		if n := len(runs); n > 0 {
			last := &runs[n-1]
			if last.Row == c.Row && last.EndCol+1 == c.Col {
				last.EndCol = c.Col
				continue
			}
		}
		runs = append(runs, RowRun{Row: c.Row, StartCol: c.Col, EndCol: c.Col})
	}
	return runs
}
