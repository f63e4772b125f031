package models

// ClassStats aggregates fee figures for a single class.
type ClassStats struct {
	Class         string  `json:"class"`
	ClassTotal    float64 `json:"class_total"`
	Collected     float64 `json:"collected"`
	Outstanding   float64 `json:"outstanding"`
	StudentsCount int     `json:"students_count"`
}

// ClassSeries holds parallel sequences for charting, one entry per distinct
// class, in the same order the classes were folded.
type ClassSeries struct {
	Labels      []string  `json:"labels"`
	Collected   []float64 `json:"collected"`
	Outstanding []float64 `json:"outstanding"`
}

// ClassCount is the number of students enrolled in one class.
type ClassCount struct {
	Class string `json:"class"`
	Count int    `json:"count"`
}

// Summary holds the headcount figures for the summary view.
type Summary struct {
	TotalStudents int          `json:"total_students"`
	ClassCounts   []ClassCount `json:"class_counts"`
	FreeStudents  int          `json:"free_students"`
}

// BuildClassStats folds students into per-class fee statistics. Classes
// appear in the order they are first seen in the input.
func BuildClassStats(students []*Student) []ClassStats {
	index := map[string]int{}
	var stats []ClassStats
	for _, s := range students {
		i, ok := index[s.Class]
		if !ok {
			i = len(stats)
			index[s.Class] = i
			stats = append(stats, ClassStats{Class: s.Class})
		}
		stats[i].ClassTotal += s.TotalFee
		stats[i].Collected += s.Paid()
		stats[i].Outstanding += s.Unpaid()
		stats[i].StudentsCount++
	}
	return stats
}

// Totals sums collected and outstanding amounts across all classes.
func Totals(stats []ClassStats) (collected, outstanding float64) {
	for _, cs := range stats {
		collected += cs.Collected
		outstanding += cs.Outstanding
	}
	return collected, outstanding
}

// BuildClassSeries reshapes per-class stats into parallel chart series.
func BuildClassSeries(stats []ClassStats) *ClassSeries {
	series := &ClassSeries{
		Labels:      make([]string, 0, len(stats)),
		Collected:   make([]float64, 0, len(stats)),
		Outstanding: make([]float64, 0, len(stats)),
	}
	for _, cs := range stats {
		series.Labels = append(series.Labels, cs.Class)
		series.Collected = append(series.Collected, cs.Collected)
		series.Outstanding = append(series.Outstanding, cs.Outstanding)
	}
	return series
}
