// Package datasets loads regression test cases from files. A dataset is a
// numeric table: one row per test case, one column per input symbol, and the
// last column holding the expected output.
package datasets

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/XiaoConstantine/treegp/pkg/core"
	"github.com/XiaoConstantine/treegp/pkg/errors"
)

// Dataset holds loaded test cases in the shape the config wants them.
type Dataset struct {
	Tests  [][]float64
	Actual []float64
}

// Apply copies the dataset's test cases onto a config.
func (d *Dataset) Apply(cfg core.Config) core.Config {
	cfg.Tests = d.Tests
	cfg.Actual = d.Actual
	return cfg
}

// Len returns the number of test cases.
func (d *Dataset) Len() int {
	return len(d.Tests)
}

// LoadCSV reads a dataset from a CSV file. A header row is skipped when its
// first field does not parse as a number. Every row needs at least two
// columns and all rows must agree on width.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ResourceNotFound, "failed to open dataset")
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidInput, "failed to parse dataset"),
			errors.Fields{"path": path})
	}
	if len(records) == 0 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "dataset is empty"),
			errors.Fields{"path": path})
	}

	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		records = records[1:]
	}

	d := &Dataset{}
	width := -1
	for i, rec := range records {
		if width == -1 {
			width = len(rec)
			if width < 2 {
				return nil, errors.Newf(errors.InvalidInput,
					"dataset needs at least one input column and one output column, got %d", width)
			}
		}
		if len(rec) != width {
			return nil, errors.Newf(errors.InvalidInput,
				"row %d has %d columns, expected %d", i, len(rec), width)
		}

		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.WithFields(
					errors.Wrap(err, errors.InvalidInput, "non-numeric dataset value"),
					errors.Fields{"row": i, "column": j})
			}
			row[j] = v
		}
		d.Tests = append(d.Tests, row[:len(row)-1])
		d.Actual = append(d.Actual, row[len(row)-1])
	}
	return d, nil
}
