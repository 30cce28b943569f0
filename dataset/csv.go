package dataset

import (
	"encoding/csv"
	"os"

	"github.com/tabulab/cellstate/errors"
)

// LoadCSV reads a CSV file whose first record is the header row.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeDatasetNotFound, "dataset file not found: "+path).
				WithDetail("path", path)
		}
		return nil, errors.DatasetParse(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Producers and the store tolerate ragged rows; the reader should too.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.DatasetParse(path, err)
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeDatasetParse, "dataset has no header row").
			WithDetail("path", path)
	}

	return New(records[0], records[1:]), nil
}
