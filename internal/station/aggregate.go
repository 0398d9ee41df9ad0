package station

// values collects the non-null values of f in record order.
func values(records []Record, f Field) []float64 {
	out := make([]float64, 0, len(records))
	for i := range records {
		if v := f.Value(&records[i]); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Mean averages the non-null values of f. It returns nil when there is
// nothing to average.
func Mean(records []Record, f Field) *float64 {
	vals := values(records, f)
	if len(vals) == 0 {
		return nil
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	return &mean
}

// Sum totals the non-null values of f, nil when none are present.
func Sum(records []Record, f Field) *float64 {
	vals := values(records, f)
	if len(vals) == 0 {
		return nil
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return &sum
}

// Max returns the largest non-null value of f.
func Max(records []Record, f Field) *float64 {
	vals := values(records, f)
	if len(vals) == 0 {
		return nil
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if v > best {
			best = v
		}
	}
	return &best
}

// Min returns the smallest non-null value of f.
func Min(records []Record, f Field) *float64 {
	vals := values(records, f)
	if len(vals) == 0 {
		return nil
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if v < best {
			best = v
		}
	}
	return &best
}

// LatestNonNull returns the chronologically last non-null value of f. Used
// for direction-like fields where an average means nothing.
func LatestNonNull(records []Record, f Field) *float64 {
	for i := len(records) - 1; i >= 0; i-- {
		if v := f.Value(&records[i]); v != nil {
			c := *v
			return &c
		}
	}
	return nil
}

// Summary bundles the window statistics of one field.
type Summary struct {
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Latest *float64 `json:"latest"`
}

// Summarize computes every statistic of f over records in one call.
func Summarize(records []Record, f Field) Summary {
	return Summary{
		Count:  len(values(records, f)),
		Mean:   Mean(records, f),
		Min:    Min(records, f),
		Max:    Max(records, f),
		Latest: LatestNonNull(records, f),
	}
}
