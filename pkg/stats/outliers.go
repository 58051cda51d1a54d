package stats

// Fences are the Tukey outlier limits of a column.
type Fences struct {
	Q1, Q3       float64
	Lower, Upper float64
}

// IQRFences returns Q1 - k*IQR and Q3 + k*IQR. k is usually 1.5.
func IQRFences(x []float64, k float64) (Fences, error) {
	if len(x) == 0 {
		return Fences{}, ErrNoValues
	}
	q1 := Percentile(x, 25)
	q3 := Percentile(x, 75)
	iqr := q3 - q1
	return Fences{Q1: q1, Q3: q3, Lower: q1 - k*iqr, Upper: q3 + k*iqr}, nil
}

// CountOutliers counts values outside the fences.
func CountOutliers(x []float64, f Fences) int {
	n := 0
	for _, v := range x {
		if v < f.Lower || v > f.Upper {
			n++
		}
	}
	return n
}

