// Package report prints the text sections of the passenger table analysis.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/soamparkash/SCT-DS-02/pkg/dataprep"
	"github.com/soamparkash/SCT-DS-02/pkg/stats"
)

// printer remembers the first write error so sections can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) title(s string) {
	p.printf("\n=== %s ===\n", s)
}

// Dtype returns the pandas-style dtype name of a gota column type.
func Dtype(t series.Type) string {
	switch t {
	case series.Int:
		return "int64"
	case series.Float:
		return "float64"
	case series.Bool:
		return "bool"
	default:
		return "object"
	}
}

// Info prints the entry count, the non-null count and dtype of every column,
// and the dtype totals.
func Info(w io.Writer, df dataframe.DataFrame) error {
	p := &printer{w: w}
	rows, cols := df.Dims()
	p.title("Dataset Info")
	p.printf("RangeIndex: %d entries, 0 to %d\n", rows, rows-1)
	p.printf("Data columns (total %d columns):\n", cols)
	p.printf(" %-3s %-15s %-16s %s\n", "#", "Column", "Non-Null Count", "Dtype")

	missing := dataprep.MissingCounts(df)
	totals := map[string]int{}
	for i, name := range df.Names() {
		dtype := Dtype(df.Col(name).Type())
		totals[dtype]++
		nonNull := fmt.Sprintf("%d non-null", rows-missing[i].Count)
		p.printf(" %-3d %-15s %-16s %s\n", i, name, nonNull, dtype)
	}

	kinds := make([]string, 0, len(totals))
	for k := range totals {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s(%d)", k, totals[k])
	}
	p.printf("dtypes: %s\n", strings.Join(parts, ", "))
	return p.err
}

// Head prints the first n rows.
func Head(w io.Writer, df dataframe.DataFrame, n int) error {
	p := &printer{w: w}
	if n > df.Nrow() {
		n = df.Nrow()
	}
	p.title(fmt.Sprintf("First %d Rows", n))

	names := df.Names()
	cells := make([][]string, n)
	widths := make([]int, len(names))
	for j, name := range names {
		widths[j] = len(name)
	}
	for i := 0; i < n; i++ {
		cells[i] = make([]string, len(names))
		for j, name := range names {
			v := Cell(df.Col(name).Elem(i))
			cells[i][j] = v
			if len(v) > widths[j] {
				widths[j] = len(v)
			}
		}
	}

	p.printf("%-4s", "")
	for j, name := range names {
		p.printf("%-*s", widths[j]+2, name)
	}
	p.printf("\n")
	for i, row := range cells {
		p.printf("%-4d", i)
		for j, v := range row {
			p.printf("%-*s", widths[j]+2, v)
		}
		p.printf("\n")
	}
	return p.err
}

// Cell formats one table value the way the head and describe sections show it.
func Cell(e series.Element) string {
	if e.IsNA() {
		return "NaN"
	}
	switch e.Type() {
	case series.Float:
		return formatFloat(e.Float())
	case series.Bool:
		b, err := e.Bool()
		if err != nil {
			return "NaN"
		}
		if b {
			return "True"
		}
		return "False"
	default:
		return e.String()
	}
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Describe prints count, unique, top and freq for categorical columns and
// count, mean, std, min, quartiles and max for numeric ones. Cells that do not
// apply are shown as NaN.
func Describe(w io.Writer, df dataframe.DataFrame) error {
	p := &printer{w: w}
	p.title("Descriptive Statistics")
	header := []string{"count", "unique", "top", "freq", "mean", "std", "min", "25%", "50%", "75%", "max"}
	p.printf("%-13s", "")
	for _, h := range header {
		p.printf("%-13s", h)
	}
	p.printf("\n")

	for _, name := range df.Names() {
		col := df.Col(name)
		row := make([]string, len(header))
		for i := range row {
			row[i] = "NaN"
		}
		switch col.Type() {
		case series.Int, series.Float:
			s := stats.Describe(dataprep.NonMissingFloats(col))
			row[0] = strconv.Itoa(s.Count)
			for i, v := range []float64{s.Mean, s.Std, s.Min, s.Q1, s.Q2, s.Q3, s.Max} {
				row[4+i] = fmt.Sprintf("%.6f", v)
			}
		default:
			values := make([]string, 0, col.Len())
			for i := 0; i < col.Len(); i++ {
				if e := col.Elem(i); !e.IsNA() {
					values = append(values, Cell(e))
				}
			}
			s := stats.DescribeCategorical(values)
			row[0] = strconv.Itoa(s.Count)
			row[1] = strconv.Itoa(s.Unique)
			if s.Count > 0 {
				row[2] = s.Top
				row[3] = strconv.Itoa(s.Freq)
			}
		}
		p.printf("%-13s", name)
		for _, v := range row {
			p.printf("%-13s", v)
		}
		p.printf("\n")
	}
	return p.err
}

// Duplicates prints the number of duplicated rows.
func Duplicates(w io.Writer, df dataframe.DataFrame) error {
	p := &printer{w: w}
	p.title("Duplicate Rows")
	p.printf("Total duplicate rows: %d\n", dataprep.CountDuplicates(df))
	return p.err
}

// Unique prints the distinct values of each column, in order of first appearance.
func Unique(w io.Writer, df dataframe.DataFrame, columns ...string) error {
	p := &printer{w: w}
	p.title("Unique Values")
	for _, c := range columns {
		values, err := dataprep.UniqueValues(df, c)
		if err != nil {
			return err
		}
		p.printf("%-12s [%s]\n", c+":", strings.Join(values, " "))
	}
	return p.err
}

// Missing prints the per-column missing value counts under title.
func Missing(w io.Writer, title string, df dataframe.DataFrame) error {
	p := &printer{w: w}
	p.title(title)
	for _, c := range dataprep.MissingCounts(df) {
		p.printf("%-15s %d\n", c.Column, c.Count)
	}
	return p.err
}

// Fills prints what each cleaning step replaced.
func Fills(w io.Writer, fills []dataprep.Fill) error {
	p := &printer{w: w}
	p.title("Imputation")
	p.printf("%-15s%-10s%-15s%s\n", "Column", "Strategy", "Value", "Filled")
	for _, f := range fills {
		p.printf("%-15s%-10s%-15s%d\n", f.Column, f.Strategy, f.Value, f.Filled)
	}
	return p.err
}

// Outliers prints the Tukey fences of each numeric column and how many
// values fall outside them.
func Outliers(w io.Writer, df dataframe.DataFrame, columns ...string) error {
	p := &printer{w: w}
	p.title("Outliers (1.5 x IQR)")
	p.printf("%-10s%-12s%-12s%-12s%-12s%s\n", "Column", "Q1", "Q3", "Lower", "Upper", "Count")
	for _, c := range columns {
		col := df.Col(c)
		if col.Err != nil {
			return fmt.Errorf("report: %w", col.Err)
		}
		values := dataprep.NonMissingFloats(col)
		f, err := stats.IQRFences(values, 1.5)
		if err != nil {
			return fmt.Errorf("report: outliers of %s: %w", c, err)
		}
		p.printf("%-10s%-12.4f%-12.4f%-12.4f%-12.4f%d\n", c, f.Q1, f.Q3, f.Lower, f.Upper, stats.CountOutliers(values, f))
	}
	return p.err
}

// Summary prints the sections that describe the raw table: info, head,
// descriptive statistics, duplicates and the unique values of the key columns.
func Summary(w io.Writer, df dataframe.DataFrame, headRows int) error {
	sections := []func() error{
		func() error { return Info(w, df) },
		func() error { return Head(w, df, headRows) },
		func() error { return Describe(w, df) },
		func() error { return Duplicates(w, df) },
		func() error { return Unique(w, df, "pclass", "survived", "sex") },
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
	}
	return nil
}

// Cleaning prints the missing values before and after cleaning, the fills
// that were applied and the outlier summary of age and fare.
func Cleaning(w io.Writer, raw, cleaned dataframe.DataFrame, fills []dataprep.Fill) error {
	sections := []func() error{
		func() error { return Missing(w, "Missing Values Before Cleaning", raw) },
		func() error { return Fills(w, fills) },
		func() error { return Missing(w, "Missing Values After Cleaning", cleaned) },
		func() error { return Outliers(w, cleaned, "age", "fare") },
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
	}
	return nil
}
