package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for export paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("data: unsupported export format")

const sheetName = "passengers"

// Export writes df to path. The format follows the extension: .csv or .xlsx.
func Export(df dataframe.DataFrame, path string) error {
	if df.Err != nil {
		return df.Err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("data: create %s: %w", dir, err)
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return exportCSV(df, path)
	case ".xlsx":
		return exportXLSX(df, path)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func exportCSV(df dataframe.DataFrame, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("data: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if err := df.WriteCSV(file); err != nil {
		return fmt.Errorf("data: write csv: %w", err)
	}
	return nil
}

func exportXLSX(df dataframe.DataFrame, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("data: rename sheet: %w", err)
	}

	names := df.Names()
	header := make([]interface{}, len(names))
	for i, name := range names {
		header[i] = name
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("data: write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("data: header style: %w", err)
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("data: header style: %w", err)
	}

	nrow, ncol := df.Dims()
	for r := 0; r < nrow; r++ {
		row := make([]interface{}, ncol)
		for c := 0; c < ncol; c++ {
			row[c] = cellValue(df.Elem(r, c))
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("data: write row %d: %w", r+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("data: save %s: %w", path, err)
	}
	return nil
}

// cellValue keeps numbers numeric in the sheet; missing cells stay empty.
func cellValue(e series.Element) interface{} {
	if e.IsNA() {
		return nil
	}
	switch e.Type() {
	case series.Int:
		v, err := e.Int()
		if err != nil {
			return nil
		}
		return v
	case series.Float:
		return e.Float()
	case series.Bool:
		v, err := e.Bool()
		if err != nil {
			return nil
		}
		return v
	default:
		return e.String()
	}
}
