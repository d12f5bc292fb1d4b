package bodyfat

import "math"

// Unit conversions.
const (
	CentimetersPerInch = 2.54
	MetersPerInch      = 0.0254
	KilogramsPerPound  = 0.453592
)

// Advisory messages attached to an absent estimate.
const (
	adviseRFMRequired        = "Height and waist measurements required for RFM method"
	adviseNavyMaleRequired   = "Height, neck, and waist measurements required for Navy method (Male)"
	adviseNavyFemaleRequired = "Height, neck, waist, and hip measurements required for Navy method (Female)"
	adviseNavyMaleOrder      = "Waist measurement must be greater than neck measurement for Navy method"
	adviseNavyFemaleOrder    = "Waist + Hip must be greater than neck measurement for Navy method"
	adviseNavyUndefined      = "Navy formula is undefined for these measurements"
	adviseJPMaleRequired     = "Pectoral, abdominal, thigh skinfolds and age required for Jackson & Pollock method"
	adviseJPFemaleRequired   = "Triceps, suprailiac, thigh skinfolds and age required for Jackson & Pollock method"
	adviseJPDensity          = "Invalid density calculation for Jackson & Pollock method"
	adviseMilMaleRequired    = "Height, neck, and waist measurements required for Military method (Male)"
	adviseMilFemaleRequired  = "Height, neck, waist, and hip measurements required for Military method (Female)"
	adviseMilMaleOrder       = "Waist measurement must be greater than neck measurement for Military method"
	adviseMilFemaleOrder     = "Waist + Hip must be greater than neck measurement for Military method"
	adviseMilUndefined       = "Military formula is undefined for these measurements"
)

// estimator computes one method. An absent value comes with an advisory.
type estimator func(a Averages, g Gender) (*float64, string)

// RFM estimates body fat from the height to waist ratio (Relative Fat Mass).
func RFM(a Averages, g Gender) *float64 {
	v, _ := rfm(a, g)
	return v
}

// Navy estimates body fat with the Hodgdon-Beckett circumference formula.
func Navy(a Averages, g Gender) *float64 {
	v, _ := navy(a, g)
	return v
}

// JacksonPollock estimates body fat from three skinfolds and age, converting
// body density with the Siri equation.
func JacksonPollock(a Averages, g Gender) *float64 {
	v, _ := jacksonPollock(a, g)
	return v
}

// Military estimates body fat with the DoD circumference formula.
func Military(a Averages, g Gender) *float64 {
	v, _ := military(a, g)
	return v
}

func rfm(a Averages, g Gender) (*float64, string) {
	if !positive(a.Height) || !positive(a.Waist) {
		return nil, adviseRFMRequired
	}
	ratio := (*a.Height * CentimetersPerInch) / (*a.Waist * CentimetersPerInch)
	base := 64.0
	if g == Female {
		base = 76.0
	}
	return finite(base-20*ratio), ""
}

func navy(a Averages, g Gender) (*float64, string) {
	if g == Female {
		if !positive(a.Height) || !set(a.Neck) || !set(a.Waist) || !set(a.Hip) {
			return nil, adviseNavyFemaleRequired
		}
		x := *a.Waist + *a.Hip - *a.Neck
		if x <= 0 {
			return nil, adviseNavyFemaleOrder
		}
		v := finite(495/(1.29579-0.35004*math.Log10(x)+0.221*math.Log10(*a.Height)) - 450)
		if v == nil {
			return nil, adviseNavyUndefined
		}
		return v, ""
	}
	if !positive(a.Height) || !set(a.Neck) || !set(a.Waist) {
		return nil, adviseNavyMaleRequired
	}
	x := *a.Waist - *a.Neck
	if x <= 0 {
		return nil, adviseNavyMaleOrder
	}
	v := finite(495/(1.0324-0.19077*math.Log10(x)+0.15456*math.Log10(*a.Height)) - 450)
	if v == nil {
		return nil, adviseNavyUndefined
	}
	return v, ""
}

func jacksonPollock(a Averages, g Gender) (*float64, string) {
	var density float64
	if g == Female {
		if !set(a.Age) || !set(a.Triceps) || !set(a.Suprailiac) || !set(a.Thigh) {
			return nil, adviseJPFemaleRequired
		}
		sum := *a.Triceps + *a.Suprailiac + *a.Thigh
		density = 1.0994921 - 0.0009929*sum + 0.0000023*sum*sum - 0.0001392**a.Age
	} else {
		if !set(a.Age) || !set(a.Pectoral) || !set(a.Abdominal) || !set(a.Thigh) {
			return nil, adviseJPMaleRequired
		}
		sum := *a.Pectoral + *a.Abdominal + *a.Thigh
		density = 1.10938 - 0.0008267*sum + 0.0000016*sum*sum - 0.0002574**a.Age
	}
	if density <= 0 {
		return nil, adviseJPDensity
	}
	v := finite(Siri(density))
	if v == nil {
		return nil, adviseJPDensity
	}
	return v, ""
}

func military(a Averages, g Gender) (*float64, string) {
	if g == Female {
		if !positive(a.Height) || !set(a.Neck) || !set(a.Waist) || !set(a.Hip) {
			return nil, adviseMilFemaleRequired
		}
		x := *a.Waist + *a.Hip - *a.Neck
		if x <= 0 {
			return nil, adviseMilFemaleOrder
		}
		v := finite(163.205*math.Log10(x) - 97.684*math.Log10(*a.Height) - 78.387)
		if v == nil {
			return nil, adviseMilUndefined
		}
		return v, ""
	}
	if !positive(a.Height) || !set(a.Neck) || !set(a.Waist) {
		return nil, adviseMilMaleRequired
	}
	x := *a.Waist - *a.Neck
	if x <= 0 {
		return nil, adviseMilMaleOrder
	}
	v := finite(86.010*math.Log10(x) - 70.041*math.Log10(*a.Height) + 36.76)
	if v == nil {
		return nil, adviseMilUndefined
	}
	return v, ""
}

// Siri converts body density (g/cm³) to a body-fat percentage.
func Siri(density float64) float64 {
	return 495/density - 450
}

// set reports whether a measurement was supplied. A zero average counts as
// not supplied, matching how the form treats a blank-or-zero field.
func set(v *float64) bool { return v != nil && *v != 0 }

func positive(v *float64) bool { return v != nil && *v > 0 }

// finite drops NaN and ±Inf so they never reach a result.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
