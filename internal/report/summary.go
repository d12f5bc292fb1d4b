package report

import (
	"github.com/aclements/go-moremath/stats"
)

// Summary aggregates a batch of results.
type Summary struct {
	Records            int      `json:"records"`
	WithEstimate       int      `json:"with_estimate"`
	MeanAdjusted       *float64 `json:"mean_adjusted"`
	StdDevAdjusted     *float64 `json:"stddev_adjusted"`
	MeanNormalizedFFMI *float64 `json:"mean_normalized_ffmi"`
}

// Summarize counts records with an adjusted estimate and averages the
// adjusted body fat and normalized FFMI over the records that have them.
func Summarize(entries []Entry) Summary {
	s := Summary{Records: len(entries)}
	var adjusted, ffmi []float64
	for _, e := range entries {
		if e.Result.Adjusted != nil {
			adjusted = append(adjusted, *e.Result.Adjusted)
		}
		if e.Result.NormalizedFFMI != nil {
			ffmi = append(ffmi, *e.Result.NormalizedFFMI)
		}
	}
	s.WithEstimate = len(adjusted)
	if len(adjusted) > 0 {
		m := stats.Mean(adjusted)
		s.MeanAdjusted = &m
	}
	if len(adjusted) > 1 {
		sd := stats.StdDev(adjusted)
		s.StdDevAdjusted = &sd
	}
	if len(ffmi) > 0 {
		m := stats.Mean(ffmi)
		s.MeanNormalizedFFMI = &m
	}
	return s
}
