package bodyfat

const adviseFFMIRequired = "Weight and height required for FFMI"

// Result is the full output of one calculation.
type Result struct {
	Gender    Gender    `json:"gender"`
	Averages  Averages  `json:"averages"`
	Estimates Estimates `json:"estimates"`
	Reconciliation
	Muscularity
	// Advisories name the inputs a method needed when it produced no value.
	Advisories []string `json:"advisories,omitempty"`
}

// Valid reports whether g is one of the two supported tags.
func (g Gender) Valid() bool { return g == Male || g == Female }

// Calculate runs the whole pipeline: averages, the estimators, the
// reconciler and the muscularity index. It is a pure function of its input.
// Callers validate the gender; any tag other than Female selects the male
// formulas.
func Calculate(in Input) Result {
	avg := ComputeAverages(in)
	res := Result{Gender: in.Gender, Averages: avg}

	run := func(fn estimator) *float64 {
		v, advice := fn(avg, in.Gender)
		if v == nil && advice != "" {
			res.Advisories = append(res.Advisories, advice)
		}
		return v
	}
	res.Estimates = Estimates{
		RFM:            run(rfm),
		Navy:           run(navy),
		JacksonPollock: run(jacksonPollock),
		Military:       run(military),
	}

	res.Reconciliation = Reconcile(res.Estimates)
	res.Muscularity = MuscularityIndex(res.Adjusted, avg.Weight, avg.Height)
	if res.Adjusted != nil && res.FFMI == nil && (!positive(avg.Weight) || !positive(avg.Height)) {
		res.Advisories = append(res.Advisories, adviseFFMIRequired)
	}
	return res
}

// HasEstimate reports whether at least one method produced a value.
func (r Result) HasEstimate() bool {
	e := r.Estimates
	return e.RFM != nil || e.Navy != nil || e.JacksonPollock != nil || e.Military != nil
}
