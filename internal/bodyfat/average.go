package bodyfat

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// leadingNumber matches the decimal literal at the start of a reading, so
// "70.5in" reads as 70.5 and "in 70" does not parse at all.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseReading parses one textual reading. Empty, non-numeric and
// non-finite values report ok=false.
func ParseReading(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Average reduces up to MaxReadings readings to their arithmetic mean,
// skipping entries that do not parse. It returns nil when none parse.
func Average(r Readings) *float64 {
	if len(r) > MaxReadings {
		r = r[:MaxReadings]
	}
	nums := make([]float64, 0, len(r))
	for _, s := range r {
		if v, ok := ParseReading(s); ok {
			nums = append(nums, v)
		}
	}
	if len(nums) == 0 {
		return nil
	}
	return ptr(stats.Mean(nums))
}

// Scalar parses a single-value field such as age or weight.
func Scalar(s string) *float64 {
	if v, ok := ParseReading(s); ok {
		return &v
	}
	return nil
}

// ComputeAverages averages every site of the input and parses age and weight.
func ComputeAverages(in Input) Averages {
	return Averages{
		Height:     Average(in.Height),
		Neck:       Average(in.Neck),
		Waist:      Average(in.Waist),
		Hip:        Average(in.Hip),
		Pectoral:   Average(in.Pectoral),
		Abdominal:  Average(in.Abdominal),
		Thigh:      Average(in.Thigh),
		Triceps:    Average(in.Triceps),
		Suprailiac: Average(in.Suprailiac),
		Age:        Scalar(in.Age),
		Weight:     Scalar(in.Weight),
	}
}
