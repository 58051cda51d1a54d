package data

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
)

var (
	// ErrEmptyDataset is returned when the input has a header but no rows.
	ErrEmptyDataset = errors.New("data: dataset has no rows")
	// ErrMissingColumn is returned when a schema column is absent from the header.
	ErrMissingColumn = errors.New("data: missing column")
)

// MissingMarkers are the cell values read as missing.
var MissingMarkers = []string{"", "NA", "NaN", "nan"}

//go:embed dataset/titanic_sample.csv
var sampleCSV []byte

// LoadCSV reads a CSV table with a header row and types its columns from schema.
func LoadCSV(r io.Reader, schema Schema) (dataframe.DataFrame, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	records, err := reader.ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("data: read csv: %w", err)
	}
	if len(records) < 2 {
		return dataframe.DataFrame{}, ErrEmptyDataset
	}

	header := make(map[string]struct{}, len(records[0]))
	for _, name := range records[0] {
		header[name] = struct{}{}
	}
	for _, name := range schema.Names() {
		if _, ok := header[name]; !ok {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithTypes(schema.Types()),
		dataframe.NaNValues(MissingMarkers),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("data: load records: %w", df.Err)
	}
	return df, nil
}

// LoadFile opens path and reads it with LoadCSV.
func LoadFile(path string, schema Schema) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("data: open %s: %w", path, err)
	}
	defer file.Close()
	return LoadCSV(file, schema)
}

// LoadSample reads the passenger sample bundled with the binary.
func LoadSample(schema Schema) (dataframe.DataFrame, error) {
	return LoadCSV(bytes.NewReader(sampleCSV), schema)
}

// Load reads path, or the bundled sample when path is empty.
func Load(path string, schema Schema) (dataframe.DataFrame, error) {
	if path == "" {
		return LoadSample(schema)
	}
	return LoadFile(path, schema)
}
