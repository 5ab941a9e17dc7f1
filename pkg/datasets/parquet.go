package datasets

import (
	"context"

	"github.com/apache/arrow/go/v13/arrow/array"
	"github.com/apache/arrow/go/v13/arrow/memory"
	"github.com/apache/arrow/go/v13/parquet/file"
	"github.com/apache/arrow/go/v13/parquet/pqarrow"

	"github.com/XiaoConstantine/treegp/pkg/errors"
)

// LoadParquet reads a dataset from a Parquet file. All columns must be
// float64; the last column is the expected output and the rest are input
// columns in symbol order.
func LoadParquet(path string) (*Dataset, error) {
	reader, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, errors.Wrap(err, errors.ResourceNotFound, "failed to open parquet dataset")
	}
	defer reader.Close()

	arrowReader, err := pqarrow.NewFileReader(reader, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	if err != nil {
		return nil, errors.Wrap(err, errors.InvalidInput, "failed to read parquet dataset")
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, errors.InvalidInput, "failed to read parquet table")
	}
	defer table.Release()

	cols := int(table.NumCols())
	rows := int(table.NumRows())
	if cols < 2 {
		return nil, errors.Newf(errors.InvalidInput,
			"dataset needs at least one input column and one output column, got %d", cols)
	}

	values := make([][]float64, cols)
	for c := 0; c < cols; c++ {
		col := table.Column(c)
		vals := make([]float64, 0, rows)
		for _, chunk := range col.Data().Chunks() {
			f64, ok := chunk.(*array.Float64)
			if !ok {
				return nil, errors.WithFields(
					errors.New(errors.InvalidInput, "parquet column is not float64"),
					errors.Fields{"column": table.Schema().Field(c).Name})
			}
			for i := 0; i < f64.Len(); i++ {
				vals = append(vals, f64.Value(i))
			}
		}
		values[c] = vals
	}

	d := &Dataset{
		Tests:  make([][]float64, rows),
		Actual: values[cols-1],
	}
	for r := 0; r < rows; r++ {
		row := make([]float64, cols-1)
		for c := 0; c < cols-1; c++ {
			row[c] = values[c][r]
		}
		d.Tests[r] = row
	}
	return d, nil
}
