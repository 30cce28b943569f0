package producer

import (
	"testing"

	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/dataset"
	"github.com/tabulab/cellstate/store"
)

func newBoundStore(t *testing.T, d *dataset.Dataset) *store.Store {
	t.Helper()
	s := store.New()
	s.RebuildHeaderMap(d.Columns())
	return s
}

func cellCoord(row, col int) cell.Coordinate {
	return cell.Coordinate{Row: row, Col: col}
}
