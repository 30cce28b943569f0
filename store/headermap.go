package store

// HeaderMap maps column names to column indices. It is rebuilt whenever
// the underlying dataset's column set changes; stored cell state is
// cleared at the same time because old indices no longer refer to the
// same columns.
type HeaderMap struct {
	names   []string
	indices map[string]int
}

// NewHeaderMap builds a HeaderMap from column names in display order.
// A duplicate name keeps its first index.
func NewHeaderMap(columnNames []string) HeaderMap {
	h := HeaderMap{
		names:   append([]string(nil), columnNames...),
		indices: make(map[string]int, len(columnNames)),
	}
	for i, name := range columnNames {
		if _, exists := h.indices[name]; !exists {
			h.indices[name] = i
		}
	}
	return h
}

// Index resolves a column name to its index.
func (h HeaderMap) Index(name string) (int, bool) {
	i, ok := h.indices[name]
	return i, ok
}

// Name returns the column name at index i, or "" when out of range.
func (h HeaderMap) Name(i int) string {
	if i < 0 || i >= len(h.names) {
		return ""
	}
	return h.names[i]
}

// Columns returns the column names in order. The slice is a copy.
func (h HeaderMap) Columns() []string {
	return append([]string(nil), h.names...)
}

// Len returns the number of columns.
func (h HeaderMap) Len() int {
	return len(h.names)
}
