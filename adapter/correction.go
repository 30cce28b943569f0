package adapter

import (
	"github.com/sirupsen/logrus"

	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/errors"
	"github.com/tabulab/cellstate/logging"
	"github.com/tabulab/cellstate/store"
)

// Correction translates correction-pass results into suggestion
// updates. It never touches a cell's validation status or detail,
// except through OnAccepted, which is the one sanctioned crossover:
// accepting a correction marks the cell corrected and clears its
// pending suggestions.
type Correction struct {
	store *store.Store
	log   *logrus.Entry
}

// NewCorrection creates a correction adapter bound to a store.
func NewCorrection(s *store.Store) *Correction {
	return &Correction{
		store: s,
		log:   logging.NewLogger("correction-adapter"),
	}
}

// OnResult handles one correction-suggestion pass result. The whole
// batch goes to the store in a single update call.
func (a *Correction) OnResult(res CorrectionResult) {
	if res.Generation != a.store.Generation() {
		a.log.WithField("code", errors.ErrCodeStaleGeneration).
			Warn(errors.StaleGeneration("correction", res.Generation, a.store.Generation()).Message)
		return
	}
	if res.Suggestions == nil {
		a.log.WithField("code", errors.ErrCodeMalformedPayload).
			Warn(errors.MalformedPayload("correction", "missing suggestions map").Message)
		return
	}

	headers := a.store.HeaderMap()
	changes := make(map[cell.Coordinate]cell.Partial)
	for key, suggestions := range res.Suggestions {
		col, ok := headers.Index(key.Column)
		if !ok {
			a.log.WithFields(logrus.Fields{
				"code":   errors.ErrCodeColumnUnknown,
				"column": key.Column,
			}).Warn("Suggestion for unknown column skipped")
			continue
		}
		if key.Row < 0 {
			a.log.WithFields(logrus.Fields{
				"code": errors.ErrCodeStaleCoordinate,
				"row":  key.Row,
			}).Warn("Negative row index skipped")
			continue
		}
		changes[cell.Coordinate{Row: key.Row, Col: col}] = cell.Suggest(suggestions)
	}

	if len(changes) == 0 {
		return
	}
	a.store.UpdateStates(changes)
}

// OnAccepted handles a user-accepted correction for one cell: a
// dedicated follow-up update that sets the status to Corrected and
// clears the pending suggestions.
func (a *Correction) OnAccepted(row int, column string) {
	col, ok := a.store.HeaderMap().Index(column)
	if !ok {
		a.log.WithFields(logrus.Fields{
			"code":   errors.ErrCodeColumnUnknown,
			"column": column,
		}).Warn("Accepted correction for unknown column dropped")
		return
	}
	if row < 0 {
		return
	}
	a.store.UpdateStates(map[cell.Coordinate]cell.Partial{
		{Row: row, Col: col}: cell.Accepted(),
	})
}
