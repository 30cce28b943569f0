package adapter

import (
	"github.com/sirupsen/logrus"

	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/errors"
	"github.com/tabulab/cellstate/logging"
	"github.com/tabulab/cellstate/store"
)

// Validation translates validation-pass results into status/detail
// updates. It never touches a cell's suggestions, so a correction
// contribution on the same cell survives any validation pass.
type Validation struct {
	store *store.Store
	log   *logrus.Entry
}

// NewValidation creates a validation adapter bound to a store.
func NewValidation(s *store.Store) *Validation {
	return &Validation{
		store: s,
		log:   logging.NewLogger("validation-adapter"),
	}
}

// OnResult handles one validation pass result. Malformed payloads and
// stale generations are logged and dropped; nothing is raised to the
// caller. All surviving cells are submitted in a single store update
// so the display sees one batched change event.
func (a *Validation) OnResult(res ValidationResult) {
	if res.Generation != a.store.Generation() {
		a.log.WithField("code", errors.ErrCodeStaleGeneration).
			Warn(errors.StaleGeneration("validation", res.Generation, a.store.Generation()).Message)
		return
	}
	if res.Rows == nil || res.Columns == nil {
		a.log.WithField("code", errors.ErrCodeMalformedPayload).
			Warn(errors.MalformedPayload("validation", "missing rows or columns").Message)
		return
	}

	headers := a.store.HeaderMap()
	changes := make(map[cell.Coordinate]cell.Partial)
	for _, name := range headers.Columns() {
		statuses, ok := res.Columns[name]
		if !ok {
			// Producer partial coverage is expected, not an error.
			continue
		}
		if len(statuses) != len(res.Rows) {
			a.log.WithFields(logrus.Fields{
				"code":   errors.ErrCodeMalformedPayload,
				"column": name,
				"rows":   len(res.Rows),
				"got":    len(statuses),
			}).Warn("Column status count does not match row set; column skipped")
			continue
		}

		col, _ := headers.Index(name)
		for i, row := range res.Rows {
			if row < 0 {
				a.log.WithFields(logrus.Fields{
					"code": errors.ErrCodeStaleCoordinate,
					"row":  row,
				}).Warn("Negative row index skipped")
				continue
			}
			status, detail := a.mapStatus(statuses[i])
			changes[cell.Coordinate{Row: row, Col: col}] = cell.Validation(status, detail)
		}
	}

	if len(changes) == 0 {
		return
	}
	a.store.UpdateStates(changes)
}

// mapStatus translates the producer's status vocabulary. Unrecognized
// values degrade to Normal with a warning; a bad producer must never
// take the table down.
func (a *Validation) mapStatus(cs CellStatus) (cell.State, string) {
	switch cs.Status {
	case StatusValid:
		return cell.StateNormal, ""
	case StatusInvalid:
		return cell.StateInvalid, cs.Message
	case StatusCorrectable:
		return cell.StateCorrectable, cs.Message
	default:
		a.log.WithField("code", errors.ErrCodeUnknownStatus).
			Warn(errors.UnknownStatus("validation", cs.Status).Message)
		return cell.StateNormal, ""
	}
}
