package bodyfat

// ReferenceHeightM is the height the normalized FFMI is adjusted to.
const ReferenceHeightM = 1.8

// NaturalFFMILimit is the normalized FFMI above which results are rarely
// reached without assistance.
const NaturalFFMILimit = 25.0

// Muscularity holds the fat-free mass index and its height-normalized form.
// Both are nil or both are set.
type Muscularity struct {
	FFMI           *float64 `json:"ffmi"`
	NormalizedFFMI *float64 `json:"normalized_ffmi"`
}

// MuscularityIndex derives FFMI from a body-fat percentage, weight in pounds
// and height in inches.
func MuscularityIndex(bfp, weightLbs, heightIn *float64) Muscularity {
	if bfp == nil || weightLbs == nil || heightIn == nil ||
		*bfp < 0 || *weightLbs <= 0 || *heightIn <= 0 {
		return Muscularity{}
	}
	weightKg := *weightLbs * KilogramsPerPound
	heightM := *heightIn * MetersPerInch

	fatMass := weightKg * (*bfp / 100)
	leanMass := weightKg - fatMass

	ffmi := leanMass / (heightM * heightM)
	normalized := ffmi + 6.1*(ReferenceHeightM-heightM)

	f, n := finite(ffmi), finite(normalized)
	if f == nil || n == nil {
		return Muscularity{}
	}
	return Muscularity{FFMI: f, NormalizedFFMI: n}
}
