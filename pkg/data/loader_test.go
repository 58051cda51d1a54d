package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadSample(t *testing.T) {
	df, err := LoadSample(TitanicSchema)
	require.NoError(t, err)

	rows, cols := df.Dims()
	assert.Equal(t, 38, rows)
	assert.Equal(t, 15, cols)

	assert.Equal(t, series.Float, df.Col("age").Type())
	assert.Equal(t, series.Int, df.Col("pclass").Type())
	assert.Equal(t, series.Bool, df.Col("adult_male").Type())
	assert.Equal(t, series.String, df.Col("deck").Type())
}

func TestLoadCSVMissingMarkers(t *testing.T) {
	in := "survived,pclass,sex,age,sibsp,parch,fare,embarked,class,who,adult_male,deck,embark_town,alive,alone\n" +
		"0,3,male,,1,0,7.25,NA,Third,man,True,nan,Southampton,no,False\n" +
		"1,1,female,38.0,1,0,71.2833,C,First,woman,False,C,Cherbourg,yes,False\n"

	df, err := LoadCSV(strings.NewReader(in), TitanicSchema)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false}, df.Col("age").IsNaN())
	assert.Equal(t, []bool{true, false}, df.Col("embarked").IsNaN())
	assert.Equal(t, []bool{true, false}, df.Col("deck").IsNaN())

	males, err := df.Col("adult_male").Bool()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, males)
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"header only", "survived,pclass\n", ErrEmptyDataset},
		{"missing column", "survived,pclass\n0,3\n", ErrMissingColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.in), TitanicSchema)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadFallsBackToSample(t *testing.T) {
	df, err := Load("", TitanicSchema)
	require.NoError(t, err)
	assert.Equal(t, 38, df.Nrow())

	_, err = Load(filepath.Join(t.TempDir(), "absent.csv"), TitanicSchema)
	assert.Error(t, err)
}

func TestExportCSVRoundTrip(t *testing.T) {
	df, err := LoadSample(TitanicSchema)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "clean.csv")
	require.NoError(t, Export(df, path))

	back, err := LoadFile(path, TitanicSchema)
	require.NoError(t, err)
	assert.Equal(t, df.Nrow(), back.Nrow())
	assert.Equal(t, df.Col("sex").Records(), back.Col("sex").Records())
}

func TestExportXLSX(t *testing.T) {
	df, err := LoadSample(TitanicSchema)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clean.xlsx")
	require.NoError(t, Export(df, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, df.Nrow()+1)
	assert.Equal(t, TitanicSchema.Names(), rows[0])
	assert.Equal(t, "male", rows[1][2])
}

func TestExportUnsupported(t *testing.T) {
	df, err := LoadSample(TitanicSchema)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clean.parquet")
	assert.ErrorIs(t, Export(df, path), ErrUnsupportedFormat)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
