package bodyfat

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestParseReading(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"plain", "70", 70, true},
		{"decimal", "34.5", 34.5, true},
		{"leading dot", ".5", 0.5, true},
		{"whitespace", "  12.25 ", 12.25, true},
		{"unit suffix", "70.5in", 70.5, true},
		{"exponent", "1e2", 100, true},
		{"negative", "-3", -3, true},
		{"empty", "", 0, false},
		{"text", "abc", 0, false},
		{"unit prefix", "in 70", 0, false},
		{"infinity", "Infinity", 0, false},
		{"overflow", "1e400", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseReading(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-12)
			}
		})
	}
}

func TestAverage(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		got := Average(Readings{"10", "11", "12"})
		require.NotNil(t, got)
		assert.InDelta(t, 11.0, *got, 1e-12)
	})
	t.Run("invalid entries are skipped not zeroed", func(t *testing.T) {
		got := Average(Readings{"10", "", "x"})
		require.NotNil(t, got)
		assert.InDelta(t, 10.0, *got, 1e-12)
	})
	t.Run("two of three", func(t *testing.T) {
		got := Average(Readings{"", "33", "35"})
		require.NotNil(t, got)
		assert.InDelta(t, 34.0, *got, 1e-12)
	})
	t.Run("nothing parses", func(t *testing.T) {
		assert.Nil(t, Average(Readings{"", "n/a", " "}))
		assert.Nil(t, Average(nil))
	})
	t.Run("only three readings count", func(t *testing.T) {
		got := Average(Readings{"1", "2", "3", "100"})
		require.NotNil(t, got)
		assert.InDelta(t, 2.0, *got, 1e-12)
	})
	t.Run("zero is a valid reading", func(t *testing.T) {
		got := Average(Readings{"0", "4"})
		require.NotNil(t, got)
		assert.InDelta(t, 2.0, *got, 1e-12)
	})
}

func TestComputeAverages(t *testing.T) {
	in := Input{
		Gender: Male,
		Height: Readings{"70", "70", ""},
		Waist:  Readings{"34"},
		Age:    "30",
		Weight: "heavy",
	}
	a := ComputeAverages(in)
	require.NotNil(t, a.Height)
	assert.InDelta(t, 70.0, *a.Height, 1e-12)
	require.NotNil(t, a.Waist)
	require.NotNil(t, a.Age)
	assert.InDelta(t, 30.0, *a.Age, 1e-12)
	assert.Nil(t, a.Weight)
	assert.Nil(t, a.Neck)
	assert.Nil(t, a.Suprailiac)
}

func TestRFM(t *testing.T) {
	a := Averages{Height: f(70), Waist: f(34)}

	male := RFM(a, Male)
	require.NotNil(t, male)
	assert.InDelta(t, 64-20*(70.0/34.0), *male, 1e-9)
	assert.InDelta(t, 22.82, *male, 0.005)

	female := RFM(a, Female)
	require.NotNil(t, female)
	assert.InDelta(t, 76-20*(70.0/34.0), *female, 1e-9)

	assert.Nil(t, RFM(Averages{Height: f(70), Waist: f(0)}, Male))
	assert.Nil(t, RFM(Averages{Height: f(70), Waist: f(-2)}, Male))
	assert.Nil(t, RFM(Averages{Height: f(70)}, Male))
	assert.Nil(t, RFM(Averages{Waist: f(34)}, Female))
}

func TestNavy(t *testing.T) {
	t.Run("male valid", func(t *testing.T) {
		got := Navy(Averages{Height: f(70), Neck: f(15), Waist: f(34)}, Male)
		require.NotNil(t, got)
		want := 495/(1.0324-0.19077*math.Log10(19)+0.15456*math.Log10(70)) - 450
		assert.InDelta(t, want, *got, 1e-9)
		assert.InDelta(t, 11.0525, *got, 1e-4)
	})
	t.Run("male waist not above neck", func(t *testing.T) {
		assert.Nil(t, Navy(Averages{Height: f(70), Neck: f(15), Waist: f(14)}, Male))
		assert.Nil(t, Navy(Averages{Height: f(70), Neck: f(15), Waist: f(15)}, Male))
	})
	t.Run("male ignores hip", func(t *testing.T) {
		got := Navy(Averages{Height: f(70), Neck: f(15), Waist: f(34)}, Male)
		withHip := Navy(Averages{Height: f(70), Neck: f(15), Waist: f(34), Hip: f(40)}, Male)
		require.NotNil(t, got)
		require.NotNil(t, withHip)
		assert.Equal(t, *got, *withHip)
	})
	t.Run("female valid", func(t *testing.T) {
		got := Navy(Averages{Height: f(64), Neck: f(13), Waist: f(30), Hip: f(40)}, Female)
		require.NotNil(t, got)
		want := 495/(1.29579-0.35004*math.Log10(57)+0.221*math.Log10(64)) - 450
		assert.InDelta(t, want, *got, 1e-9)
	})
	t.Run("female needs hip", func(t *testing.T) {
		assert.Nil(t, Navy(Averages{Height: f(64), Neck: f(13), Waist: f(30)}, Female))
	})
	t.Run("female sum not above neck", func(t *testing.T) {
		assert.Nil(t, Navy(Averages{Height: f(64), Neck: f(50), Waist: f(20), Hip: f(30)}, Female))
	})
	t.Run("negative height", func(t *testing.T) {
		assert.Nil(t, Navy(Averages{Height: f(-70), Neck: f(15), Waist: f(34)}, Male))
	})
}

func TestJacksonPollock(t *testing.T) {
	t.Run("male fixed value", func(t *testing.T) {
		a := Averages{Pectoral: f(10), Abdominal: f(15), Thigh: f(12), Age: f(30)}
		got := JacksonPollock(a, Male)
		require.NotNil(t, got)
		density := 1.10938 - 0.0008267*37 + 0.0000016*37*37 - 0.0002574*30
		assert.InDelta(t, 495/density-450, *got, 1e-4)
		assert.InDelta(t, 11.2114, *got, 1e-4)
	})
	t.Run("female uses triceps and suprailiac", func(t *testing.T) {
		a := Averages{Triceps: f(20), Suprailiac: f(18), Thigh: f(22), Age: f(25), Pectoral: f(1)}
		got := JacksonPollock(a, Female)
		require.NotNil(t, got)
		density := 1.0994921 - 0.0009929*60 + 0.0000023*60*60 - 0.0001392*25
		assert.InDelta(t, 495/density-450, *got, 1e-4)
	})
	t.Run("missing age", func(t *testing.T) {
		assert.Nil(t, JacksonPollock(Averages{Pectoral: f(10), Abdominal: f(15), Thigh: f(12)}, Male))
	})
	t.Run("female sites absent for male", func(t *testing.T) {
		a := Averages{Triceps: f(20), Suprailiac: f(18), Thigh: f(22), Age: f(25)}
		assert.Nil(t, JacksonPollock(a, Male))
	})
	t.Run("non-physical density", func(t *testing.T) {
		a := Averages{Pectoral: f(10), Abdominal: f(15), Thigh: f(12), Age: f(5000)}
		assert.Nil(t, JacksonPollock(a, Male))
	})
}

func TestMilitary(t *testing.T) {
	got := Military(Averages{Height: f(70), Neck: f(15), Waist: f(34)}, Male)
	require.NotNil(t, got)
	assert.InDelta(t, 86.010*math.Log10(19)-70.041*math.Log10(70)+36.76, *got, 1e-9)
	assert.Nil(t, Military(Averages{Height: f(70), Neck: f(15), Waist: f(10)}, Male))
	assert.Nil(t, Military(Averages{Height: f(64), Neck: f(13), Waist: f(30)}, Female))
}

func TestReconcile(t *testing.T) {
	t.Run("none valid", func(t *testing.T) {
		r := Reconcile(Estimates{})
		assert.Nil(t, r.Adjusted)
		assert.Empty(t, r.Outlier)
	})
	t.Run("single", func(t *testing.T) {
		r := Reconcile(Estimates{Navy: f(18)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 18.0, *r.Adjusted, 1e-12)
		assert.Empty(t, r.Outlier)
	})
	t.Run("two far apart still averaged", func(t *testing.T) {
		r := Reconcile(Estimates{RFM: f(10), JacksonPollock: f(40)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 25.0, *r.Adjusted, 1e-12)
		assert.Empty(t, r.Outlier)
	})
	t.Run("three with clear outlier", func(t *testing.T) {
		r := Reconcile(Estimates{RFM: f(20), Navy: f(21), JacksonPollock: f(30)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 20.5, *r.Adjusted, 1e-12)
		assert.Equal(t, MethodJacksonPollock, r.Outlier)
	})
	t.Run("outlier first", func(t *testing.T) {
		r := Reconcile(Estimates{RFM: f(40), Navy: f(21), JacksonPollock: f(22)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 21.5, *r.Adjusted, 1e-12)
		assert.Equal(t, MethodRFM, r.Outlier)
	})
	t.Run("outlier middle", func(t *testing.T) {
		r := Reconcile(Estimates{RFM: f(20), Navy: f(35), JacksonPollock: f(21)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 20.5, *r.Adjusted, 1e-12)
		assert.Equal(t, MethodNavy, r.Outlier)
	})
	t.Run("zero and negative estimates are invalid", func(t *testing.T) {
		r := Reconcile(Estimates{RFM: f(0), Navy: f(20), JacksonPollock: f(-4)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 20.0, *r.Adjusted, 1e-12)
		assert.Empty(t, r.Outlier)
	})
	t.Run("military is never reconciled", func(t *testing.T) {
		r := Reconcile(Estimates{RFM: f(20), Navy: f(22), Military: f(90)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 21.0, *r.Adjusted, 1e-12)
		assert.Empty(t, r.Outlier)
	})
}

// Exact ties must resolve by evaluation order; a symmetric rewrite that
// picks the "other" pair changes observable output.
func TestReconcileTieBreakOrder(t *testing.T) {
	t.Run("pair 1-3 ties pair 2-3", func(t *testing.T) {
		// 10, 20, 15: d12=10, d13=5, d23=5 -> pair 1-3 wins over 2-3.
		r := Reconcile(Estimates{RFM: f(10), Navy: f(20), JacksonPollock: f(15)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 12.5, *r.Adjusted, 1e-12)
		assert.Equal(t, MethodNavy, r.Outlier)
	})
	t.Run("pair 1-2 ties pair 2-3", func(t *testing.T) {
		// 10, 15, 20: d12=5, d13=10, d23=5 -> pair 1-2 wins.
		r := Reconcile(Estimates{RFM: f(10), Navy: f(15), JacksonPollock: f(20)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 12.5, *r.Adjusted, 1e-12)
		assert.Equal(t, MethodJacksonPollock, r.Outlier)
	})
	t.Run("identical values prefer pair 1-2", func(t *testing.T) {
		r := Reconcile(Estimates{RFM: f(18), Navy: f(18), JacksonPollock: f(18)})
		require.NotNil(t, r.Adjusted)
		assert.InDelta(t, 18.0, *r.Adjusted, 1e-12)
		assert.Equal(t, MethodJacksonPollock, r.Outlier)
	})
}

func TestMuscularityIndex(t *testing.T) {
	m := MuscularityIndex(f(15), f(180), f(70))
	require.NotNil(t, m.FFMI)
	require.NotNil(t, m.NormalizedFFMI)
	assert.InDelta(t, 21.953, *m.FFMI, 0.001)
	assert.InDelta(t, 22.09, *m.NormalizedFFMI, 0.005)

	tests := []struct {
		name              string
		bfp, weight, height *float64
	}{
		{"missing bfp", nil, f(180), f(70)},
		{"missing weight", f(15), nil, f(70)},
		{"missing height", f(15), f(180), nil},
		{"negative bfp", f(-1), f(180), f(70)},
		{"zero weight", f(15), f(0), f(70)},
		{"zero height", f(15), f(180), f(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MuscularityIndex(tt.bfp, tt.weight, tt.height)
			assert.Nil(t, m.FFMI)
			assert.Nil(t, m.NormalizedFFMI)
		})
	}

	zero := MuscularityIndex(f(0), f(180), f(70))
	require.NotNil(t, zero.FFMI)
	assert.NotNil(t, zero.NormalizedFFMI)
}

func maleInput() Input {
	return Input{
		Gender:    Male,
		Height:    Readings{"70", "70", "70"},
		Neck:      Readings{"15", "15.2", "14.8"},
		Waist:     Readings{"34", "", "34"},
		Pectoral:  Readings{"10"},
		Abdominal: Readings{"15", "15"},
		Thigh:     Readings{"12", "x", "12"},
		Age:       "30",
		Weight:    "180",
	}
}

func TestCalculateFullPipeline(t *testing.T) {
	res := Calculate(maleInput())

	require.NotNil(t, res.Estimates.RFM)
	require.NotNil(t, res.Estimates.Navy)
	require.NotNil(t, res.Estimates.JacksonPollock)
	require.NotNil(t, res.Estimates.Military)
	require.NotNil(t, res.Adjusted)
	require.NotNil(t, res.FFMI)
	require.NotNil(t, res.NormalizedFFMI)
	assert.Empty(t, res.Advisories)

	want := Reconcile(Estimates{
		RFM:            res.Estimates.RFM,
		Navy:           res.Estimates.Navy,
		JacksonPollock: res.Estimates.JacksonPollock,
	})
	assert.Equal(t, *want.Adjusted, *res.Adjusted)
	assert.Equal(t, want.Outlier, res.Outlier)
	// RFM 22.8, Navy 11.05, JP 11.2: RFM is the outlier.
	assert.Equal(t, MethodRFM, res.Outlier)

	ffmi := MuscularityIndex(res.Adjusted, f(180), f(70))
	assert.Equal(t, *ffmi.FFMI, *res.FFMI)
}

func TestCalculateAdvisories(t *testing.T) {
	res := Calculate(Input{Gender: Female, Height: Readings{"64"}, Waist: Readings{"30"}})

	require.NotNil(t, res.Estimates.RFM)
	assert.Nil(t, res.Estimates.Navy)
	assert.Nil(t, res.Estimates.JacksonPollock)
	require.NotNil(t, res.Adjusted)
	assert.InDelta(t, *res.Estimates.RFM, *res.Adjusted, 1e-12)
	assert.Empty(t, res.Outlier)
	assert.Nil(t, res.FFMI)

	assert.Contains(t, res.Advisories, adviseNavyFemaleRequired)
	assert.Contains(t, res.Advisories, adviseJPFemaleRequired)
	assert.Contains(t, res.Advisories, adviseFFMIRequired)
	assert.NotContains(t, res.Advisories, adviseRFMRequired)
}

func TestCalculateEmptyInput(t *testing.T) {
	res := Calculate(Input{Gender: Male})
	assert.False(t, res.HasEstimate())
	assert.Nil(t, res.Adjusted)
	assert.Nil(t, res.FFMI)
	assert.Nil(t, res.NormalizedFFMI)
	assert.Empty(t, res.Outlier)
	assert.Contains(t, res.Advisories, adviseRFMRequired)
	assert.NotContains(t, res.Advisories, adviseFFMIRequired)
}

func TestCalculateIdempotent(t *testing.T) {
	in := maleInput()
	a, err := json.Marshal(Calculate(in))
	require.NoError(t, err)
	b, err := json.Marshal(Calculate(in))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

// Pushing an input past its constraint must yield nil, never NaN or Inf.
func TestCalculateDomainGuard(t *testing.T) {
	for _, waist := range []string{"15", "10", "0", "-5"} {
		in := maleInput()
		in.Waist = Readings{waist}
		res := Calculate(in)
		assert.Nil(t, res.Estimates.Navy, "waist %s", waist)
		assert.Nil(t, res.Estimates.Military, "waist %s", waist)
		b, err := json.Marshal(res)
		require.NoError(t, err, "waist %s", waist)
		assert.NotContains(t, string(b), "NaN")
	}
	for _, height := range []string{"0", "-70"} {
		in := maleInput()
		in.Height = Readings{height}
		res := Calculate(in)
		assert.Nil(t, res.Estimates.RFM, "height %s", height)
		assert.Nil(t, res.Estimates.Navy, "height %s", height)
		assert.Nil(t, res.FFMI, "height %s", height)
		_, err := json.Marshal(res)
		require.NoError(t, err, "height %s", height)
	}
}

func TestResultJSONShape(t *testing.T) {
	res := Calculate(Input{Gender: Male, Height: Readings{"70"}, Waist: Readings{"34"}})
	b, err := json.Marshal(res)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "adjusted")
	assert.Contains(t, m, "ffmi")
	assert.Contains(t, m, "normalized_ffmi")
	assert.NotContains(t, m, "outlier")
	est, ok := m["estimates"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, est["navy"])
	assert.NotNil(t, est["rfm"])
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender(" Female ")
	require.NoError(t, err)
	assert.Equal(t, Female, g)
	g, err = ParseGender("m")
	require.NoError(t, err)
	assert.Equal(t, Male, g)
	_, err = ParseGender("other")
	assert.Error(t, err)
	assert.False(t, Gender("").Valid())
}

func TestSiteUnits(t *testing.T) {
	assert.Equal(t, "in", Waist.Unit())
	assert.Equal(t, "mm", Suprailiac.Unit())
	s, ok := ParseSite("THIGH")
	require.True(t, ok)
	assert.Equal(t, Thigh, s)
	_, ok = ParseSite("calf")
	assert.False(t, ok)
}
