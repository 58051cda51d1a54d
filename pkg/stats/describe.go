package stats

// Summary holds the descriptive statistics of one column. Numeric columns
// fill the moment and quantile fields; other columns fill Unique/Top/Freq.
type Summary struct {
	Count   int
	Numeric bool

	Unique int
	Top    string
	Freq   int

	Mean, Std            float64
	Min, Q1, Q2, Q3, Max float64
}

// Describe summarizes the non-missing values of a numeric column.
func Describe(x []float64) Summary {
	s := Summary{Count: len(x), Numeric: true}
	s.Mean = Mean(x)
	s.Std = Std(x)
	s.Min, s.Max = MinMax(x)
	s.Q1 = Percentile(x, 25)
	s.Q2 = Percentile(x, 50)
	s.Q3 = Percentile(x, 75)
	return s
}

// DescribeCategorical summarizes the non-missing values of a categorical column.
func DescribeCategorical(x []string) Summary {
	s := Summary{Count: len(x), Unique: len(Unique(x))}
	if top, freq, err := ModeString(x); err == nil {
		s.Top, s.Freq = top, freq
	}
	return s
}
