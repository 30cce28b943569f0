package errors

import "fmt"

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *Error {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *Error {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// MalformedPayload creates an error for a producer result that does not
// carry the expected structure.
func MalformedPayload(producer, reason string) *Error {
	return New(ErrCodeMalformedPayload, fmt.Sprintf("malformed %s payload: %s", producer, reason)).
		WithDetail("producer", producer)
}

// UnknownStatus creates an error for a status value outside the
// producer's documented vocabulary.
func UnknownStatus(producer, status string) *Error {
	return New(ErrCodeUnknownStatus, fmt.Sprintf("unknown %s status %q", producer, status)).
		WithDetail("producer", producer).
		WithDetail("status", status)
}

// StaleGeneration creates an error for a result batch computed against
// an outdated header map.
func StaleGeneration(producer string, got, current uint64) *Error {
	return New(ErrCodeStaleGeneration,
		fmt.Sprintf("%s result references header generation %d, current is %d", producer, got, current)).
		WithDetail("producer", producer).
		WithDetail("generation", got).
		WithDetail("currentGeneration", current)
}

// DatasetParse creates a dataset parsing error
func DatasetParse(path string, err error) *Error {
	return Wrap(err, ErrCodeDatasetParse, fmt.Sprintf("failed to parse dataset: %s", path)).
		WithDetail("path", path)
}

// ColumnUnknown creates an error for a column name missing from the
// current header map.
func ColumnUnknown(name string) *Error {
	return New(ErrCodeColumnUnknown, fmt.Sprintf("column %q not present in header map", name)).
		WithDetail("column", name)
}
