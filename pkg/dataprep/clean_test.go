package dataprep

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soamparkash/SCT-DS-02/pkg/data"
	"github.com/soamparkash/SCT-DS-02/pkg/stats"
)

func loadSample(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df, err := data.LoadSample(data.TitanicSchema)
	require.NoError(t, err)
	return df
}

func missingOf(t *testing.T, df dataframe.DataFrame, column string) int {
	t.Helper()
	for _, c := range MissingCounts(df) {
		if c.Column == column {
			return c.Count
		}
	}
	t.Fatalf("column %s not found", column)
	return 0
}

func TestMissingCountsBeforeCleaning(t *testing.T) {
	df := loadSample(t)

	assert.Equal(t, 8, missingOf(t, df, "age"))
	assert.Equal(t, 2, missingOf(t, df, "embarked"))
	assert.Equal(t, 26, missingOf(t, df, "deck"))
	assert.Equal(t, 2, missingOf(t, df, "embark_town"))
	assert.Equal(t, 0, missingOf(t, df, "fare"))
	assert.Equal(t, 38, TotalMissing(df))
}

func TestCleanTitanicPlan(t *testing.T) {
	df := loadSample(t)
	medianBefore := stats.Median(NonMissingFloats(df.Col("age")))
	embarkedMode, _, err := stats.ModeString(NonMissing(df.Col("embarked")))
	require.NoError(t, err)
	townMode, _, err := stats.ModeString(NonMissing(df.Col("embark_town")))
	require.NoError(t, err)

	cleaned, fills, err := Clean(df, TitanicPlan())
	require.NoError(t, err)

	// no column has missing values
	assert.Equal(t, 0, TotalMissing(cleaned))

	// imputed age equals the pre-cleaning median
	assert.Equal(t, 29.5, medianBefore)
	ageBefore := df.Col("age").IsNaN()
	ageAfter := cleaned.Col("age").Float()
	for i, na := range ageBefore {
		if na {
			assert.Equal(t, medianBefore, ageAfter[i])
		}
	}

	// categorical fills equal the pre-cleaning mode
	assert.Equal(t, "S", embarkedMode)
	assert.Equal(t, "Southampton", townMode)
	for i, na := range df.Col("embarked").IsNaN() {
		if na {
			assert.Equal(t, embarkedMode, cleaned.Col("embarked").Elem(i).String())
			assert.Equal(t, townMode, cleaned.Col("embark_town").Elem(i).String())
		}
	}

	assert.Contains(t, cleaned.Col("deck").Records(), "Unknown")
	assert.Equal(t, series.Bool, cleaned.Col("adult_male").Type())

	require.Len(t, fills, len(TitanicPlan()))
	assert.Equal(t, Fill{Column: "deck", Strategy: Constant, Value: "Unknown", Filled: 26}, fills[0])
	assert.Equal(t, Fill{Column: "age", Strategy: Median, Value: "29.5", Filled: 8}, fills[1])
	assert.Equal(t, Fill{Column: "embarked", Strategy: Mode, Value: "S", Filled: 2}, fills[2])

	// the input table is untouched
	assert.Equal(t, 8, missingOf(t, df, "age"))
}

func TestCleanKeepsPresentValues(t *testing.T) {
	df := loadSample(t)
	cleaned, _, err := Clean(df, TitanicPlan())
	require.NoError(t, err)

	before := df.Col("age").Float()
	after := cleaned.Col("age").Float()
	for i, na := range df.Col("age").IsNaN() {
		if !na {
			assert.Equal(t, before[i], after[i])
		}
	}
	assert.Equal(t, df.Col("fare").Float(), cleaned.Col("fare").Float())
}

func TestCleanErrors(t *testing.T) {
	df := loadSample(t)

	_, _, err := Clean(df, Plan{{Column: "cabin", Strategy: Mode}})
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, _, err = Clean(df, Plan{{Column: "sex", Strategy: Median}})
	assert.Error(t, err)

	_, _, err = Clean(df, Plan{{Column: "age", Strategy: Strategy("knn")}})
	assert.Error(t, err)

	_, _, err = Clean(df, Plan{{Column: "age", Strategy: Constant, Value: "old"}})
	assert.Error(t, err)
}

func TestAutoPlan(t *testing.T) {
	df := loadSample(t)
	plan := AutoPlan(df)

	byColumn := map[string]Step{}
	for _, s := range plan {
		byColumn[s.Column] = s
	}
	assert.Len(t, plan, 4)
	assert.Equal(t, Median, byColumn["age"].Strategy)
	assert.Equal(t, Mode, byColumn["embarked"].Strategy)
	assert.Equal(t, Constant, byColumn["deck"].Strategy)

	cleaned, _, err := Clean(df, plan)
	require.NoError(t, err)
	assert.Equal(t, 0, TotalMissing(cleaned))
}

func TestCleanIntColumnWithFractionalMedian(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"0", "1", "NaN"}, series.Int, "parch"),
		series.New([]string{"A", "NaN", "NaN"}, series.String, "deck"),
	)
	plan := AutoPlan(df)
	require.Len(t, plan, 2)
	assert.Equal(t, Step{Column: "parch", Strategy: Median}, plan[0])

	cleaned, fills, err := Clean(df, plan)
	require.NoError(t, err)
	assert.Equal(t, 0, TotalMissing(cleaned))
	assert.Equal(t, "0.5", fills[0].Value)

	parch := cleaned.Col("parch")
	assert.Equal(t, series.Float, parch.Type())
	assert.Equal(t, []float64{0, 1, 0.5}, parch.Float())

	// a whole median keeps the column int
	whole := series.New([]string{"1", "NaN", "1", "3"}, series.Int, "sibsp")
	out, v, err := ImputeMedian(whole)
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	assert.Equal(t, series.Int, out.Type())
	assert.Equal(t, []string{"1", "1", "1", "3"}, out.Records())
}

func TestImputers(t *testing.T) {
	s := series.New([]string{"1", "NaN", "3", "NaN", "3"}, series.Float, "x")

	out, v, err := ImputeMean(s)
	require.NoError(t, err)
	assert.Equal(t, "2.3333333333333335", v)
	assert.False(t, out.HasNaN())

	out, v, err = ImputeMedian(s)
	require.NoError(t, err)
	assert.Equal(t, "3", v)
	assert.Equal(t, []float64{1, 3, 3, 3, 3}, out.Float())

	out, v, err = ImputeMode(s)
	require.NoError(t, err)
	assert.Equal(t, "3", v)
	assert.False(t, out.HasNaN())

	str := series.New([]string{"b", "NaN", "a"}, series.String, "y")
	out, v, err = ImputeMode(str)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"b", "a", "a"}, out.Records())

	out, _, err = ImputeConstant(str, "z")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "z", "a"}, out.Records())

	empty := series.New([]string{"NaN", "NaN"}, series.Float, "e")
	_, _, err = ImputeMedian(empty)
	assert.ErrorIs(t, err, stats.ErrNoValues)
}

func TestCountDuplicatesAndUnique(t *testing.T) {
	df := loadSample(t)
	assert.Equal(t, 1, CountDuplicates(df))

	pclass, err := UniqueValues(df, "pclass")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, pclass)

	survived, err := UniqueValues(df, "survived")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, survived)

	sex, err := UniqueValues(df, "sex")
	require.NoError(t, err)
	assert.Equal(t, []string{"male", "female"}, sex)

	_, err = UniqueValues(df, "cabin")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestCountDuplicatesComparesFloatsExactly(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{7.1234561, 7.1234564, 7.1234561}, series.Float, "fare"),
		series.New([]string{"S", "S", "S"}, series.String, "embarked"),
	)
	assert.Equal(t, 1, CountDuplicates(df))
}

func TestNumericMatrix(t *testing.T) {
	in := "a,b,c,d\n1,true,x,2.5\n2,false,y,NaN\n3,true,z,4.5\n"
	df := dataframe.ReadCSV(strings.NewReader(in))
	require.NoError(t, df.Err)

	names, m, err := NumericMatrix(df)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, names)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{1, 1, 2.5}, []float64{m.At(0, 0), m.At(0, 1), m.At(0, 2)})
	assert.Equal(t, []float64{3, 1, 4.5}, []float64{m.At(1, 0), m.At(1, 1), m.At(1, 2)})

	strOnly := dataframe.ReadCSV(strings.NewReader("x\na\nb\n"))
	_, _, err = NumericMatrix(strOnly)
	assert.ErrorIs(t, err, ErrNoNumericColumns)
}

func TestLabelEncode(t *testing.T) {
	codes, mapping := LabelEncode([]string{"male", "female", "male"})
	assert.Equal(t, []int{0, 1, 0}, codes)
	assert.Equal(t, map[string]int{"male": 0, "female": 1}, mapping)
}
