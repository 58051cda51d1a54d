package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soamparkash/SCT-DS-02/pkg/data"
	"github.com/soamparkash/SCT-DS-02/pkg/dataprep"
)

func sample(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df, err := data.LoadSample(data.TitanicSchema)
	require.NoError(t, err)
	return df
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Info(&buf, sample(t)))
	out := buf.String()

	assert.Contains(t, out, "RangeIndex: 38 entries, 0 to 37")
	assert.Contains(t, out, "Data columns (total 15 columns):")
	assert.Regexp(t, `age\s+30 non-null\s+float64`, out)
	assert.Regexp(t, `deck\s+12 non-null\s+object`, out)
	assert.Contains(t, out, "dtypes: bool(2), float64(2), int64(4), object(7)")
}

func TestHead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Head(&buf, sample(t), 3))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	// title, header and three rows
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "embark_town")
	assert.Regexp(t, `^0\s+0\s+3\s+male\s+22\.0\s+1\s+0\s+7\.25\s+S\s+Third\s+man\s+True\s+NaN\s+Southampton`, lines[2])

	buf.Reset()
	require.NoError(t, Head(&buf, sample(t), 100))
	assert.Contains(t, buf.String(), "First 38 Rows")
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Describe(&buf, sample(t)))
	out := buf.String()

	assert.Regexp(t, `\nage\s+30\s+NaN\s+NaN\s+NaN\s+29\.1\d+`, out)
	assert.Regexp(t, `\nembarked\s+36\s+3\s+S\s+23\s+NaN`, out)
	assert.Regexp(t, `\nsex\s+38\s+2\s+female\s+20\s+`, out)
}

func TestDuplicatesAndUnique(t *testing.T) {
	var buf bytes.Buffer
	df := sample(t)
	require.NoError(t, Duplicates(&buf, df))
	require.NoError(t, Unique(&buf, df, "pclass", "survived", "sex"))
	out := buf.String()

	assert.Contains(t, out, "Total duplicate rows: 1")
	assert.Contains(t, out, "pclass:      [3 1 2]")
	assert.Contains(t, out, "sex:         [male female]")

	err := Unique(&buf, df, "cabin")
	assert.ErrorIs(t, err, dataprep.ErrUnknownColumn)
}

func TestCleaning(t *testing.T) {
	raw := sample(t)
	cleaned, fills, err := dataprep.Clean(raw, dataprep.TitanicPlan())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Cleaning(&buf, raw, cleaned, fills))
	out := buf.String()

	before := strings.Index(out, "Missing Values Before Cleaning")
	after := strings.Index(out, "Missing Values After Cleaning")
	require.True(t, before >= 0 && after > before)
	assert.Regexp(t, `age\s+8\n`, out[before:after])
	assert.Regexp(t, `deck\s+26\n`, out[before:after])
	assert.Regexp(t, `age\s+0\n`, out[after:])

	assert.Regexp(t, `age\s+median\s+29\.5\s+8\n`, out)
	assert.Regexp(t, `embarked\s+mode\s+S\s+2\n`, out)
	assert.Regexp(t, `fare\s+8\.0500\s+40\.0594\s+-39\.9641\s+88\.0735\s+2\n`, out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorsAreReturned(t *testing.T) {
	err := Summary(failingWriter{}, sample(t), 5)
	assert.EqualError(t, err, "disk full")
}
