package bodyfat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Reconciliation is the consensus of the reconciled methods.
type Reconciliation struct {
	Adjusted *float64 `json:"adjusted"`
	// Outlier is set only when three valid estimates existed.
	Outlier Method `json:"outlier,omitempty"`
}

// ReconciledMethods are the methods the reconciler consumes, in evaluation order.
var ReconciledMethods = []Method{MethodRFM, MethodNavy, MethodJacksonPollock}

type candidate struct {
	method Method
	value  float64
}

// Reconcile combines the RFM, Navy and Jackson-Pollock estimates.
//
// Only estimates that are present and strictly positive count; an estimate
// of exactly zero is treated as a failed computation. With one or two valid
// estimates the result is their mean. With three, the mutually closest pair
// is averaged and the remaining method is reported as the outlier. Exact
// ties resolve in pair order (1,2), (1,3), (2,3).
func Reconcile(e Estimates) Reconciliation {
	valid := make([]candidate, 0, len(ReconciledMethods))
	for _, m := range ReconciledMethods {
		if v := e.Get(m); v != nil && *v > 0 {
			valid = append(valid, candidate{method: m, value: *v})
		}
	}

	switch len(valid) {
	case 0:
		return Reconciliation{}
	case 1, 2:
		vals := make([]float64, len(valid))
		for i, c := range valid {
			vals[i] = c.value
		}
		return Reconciliation{Adjusted: ptr(stats.Mean(vals))}
	}

	v1, v2, v3 := valid[0], valid[1], valid[2]
	d12 := math.Abs(v1.value - v2.value)
	d13 := math.Abs(v1.value - v3.value)
	d23 := math.Abs(v2.value - v3.value)

	switch {
	case d12 <= d13 && d12 <= d23:
		return Reconciliation{Adjusted: ptr((v1.value + v2.value) / 2), Outlier: v3.method}
	case d13 <= d12 && d13 <= d23:
		return Reconciliation{Adjusted: ptr((v1.value + v3.value) / 2), Outlier: v2.method}
	default:
		return Reconciliation{Adjusted: ptr((v2.value + v3.value) / 2), Outlier: v1.method}
	}
}
