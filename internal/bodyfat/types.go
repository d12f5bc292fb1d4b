package bodyfat

import (
	"fmt"
	"strings"
)

// Gender selects the relevant sites and the formula variant.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender accepts "male"/"female" and the single-letter forms, case-insensitive.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return "", fmt.Errorf("invalid gender %q (use male or female)", s)
	}
}

// Site names a body-part measurement.
type Site string

const (
	Height     Site = "height"
	Neck       Site = "neck"
	Waist      Site = "waist"
	Hip        Site = "hip"
	Pectoral   Site = "pectoral"
	Abdominal  Site = "abdominal"
	Thigh      Site = "thigh"
	Triceps    Site = "triceps"
	Suprailiac Site = "suprailiac"
)

// Sites lists every measurement site in display order.
var Sites = []Site{Height, Neck, Waist, Hip, Pectoral, Abdominal, Thigh, Triceps, Suprailiac}

// ParseSite resolves a site name, case-insensitive.
func ParseSite(s string) (Site, bool) {
	name := Site(strings.ToLower(strings.TrimSpace(s)))
	for _, site := range Sites {
		if site == name {
			return site, true
		}
	}
	return "", false
}

// Skinfold reports whether the site is read with calipers (millimeters).
func (s Site) Skinfold() bool {
	switch s {
	case Pectoral, Abdominal, Thigh, Triceps, Suprailiac:
		return true
	}
	return false
}

// Unit is the unit readings for the site are taken in.
func (s Site) Unit() string {
	if s.Skinfold() {
		return "mm"
	}
	return "in"
}

// MaxReadings is the number of repeated readings taken per site.
const MaxReadings = 3

// Readings holds the raw textual readings for one site.
type Readings []string

// Input is one calculation request as collected from the user.
type Input struct {
	Gender     Gender   `json:"gender" yaml:"gender"`
	Height     Readings `json:"height,omitempty" yaml:"height,omitempty"`
	Neck       Readings `json:"neck,omitempty" yaml:"neck,omitempty"`
	Waist      Readings `json:"waist,omitempty" yaml:"waist,omitempty"`
	Hip        Readings `json:"hip,omitempty" yaml:"hip,omitempty"`
	Pectoral   Readings `json:"pectoral,omitempty" yaml:"pectoral,omitempty"`
	Abdominal  Readings `json:"abdominal,omitempty" yaml:"abdominal,omitempty"`
	Thigh      Readings `json:"thigh,omitempty" yaml:"thigh,omitempty"`
	Triceps    Readings `json:"triceps,omitempty" yaml:"triceps,omitempty"`
	Suprailiac Readings `json:"suprailiac,omitempty" yaml:"suprailiac,omitempty"`
	Age        string   `json:"age,omitempty" yaml:"age,omitempty"`
	Weight     string   `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Readings returns the raw readings for a site.
func (in *Input) Readings(site Site) Readings {
	if p := in.slot(site); p != nil {
		return *p
	}
	return nil
}

// SetReadings replaces the readings for a site. Unknown sites are ignored.
func (in *Input) SetReadings(site Site, r Readings) {
	if p := in.slot(site); p != nil {
		*p = r
	}
}

func (in *Input) slot(site Site) *Readings {
	switch site {
	case Height:
		return &in.Height
	case Neck:
		return &in.Neck
	case Waist:
		return &in.Waist
	case Hip:
		return &in.Hip
	case Pectoral:
		return &in.Pectoral
	case Abdominal:
		return &in.Abdominal
	case Thigh:
		return &in.Thigh
	case Triceps:
		return &in.Triceps
	case Suprailiac:
		return &in.Suprailiac
	}
	return nil
}

// Averages holds the reduced value per site plus the scalar fields.
// A nil value means no valid reading was supplied.
type Averages struct {
	Height     *float64 `json:"height"`
	Neck       *float64 `json:"neck"`
	Waist      *float64 `json:"waist"`
	Hip        *float64 `json:"hip"`
	Pectoral   *float64 `json:"pectoral"`
	Abdominal  *float64 `json:"abdominal"`
	Thigh      *float64 `json:"thigh"`
	Triceps    *float64 `json:"triceps"`
	Suprailiac *float64 `json:"suprailiac"`
	Age        *float64 `json:"age"`
	Weight     *float64 `json:"weight"`
}

// Site returns the average for a site.
func (a Averages) Site(site Site) *float64 {
	switch site {
	case Height:
		return a.Height
	case Neck:
		return a.Neck
	case Waist:
		return a.Waist
	case Hip:
		return a.Hip
	case Pectoral:
		return a.Pectoral
	case Abdominal:
		return a.Abdominal
	case Thigh:
		return a.Thigh
	case Triceps:
		return a.Triceps
	case Suprailiac:
		return a.Suprailiac
	}
	return nil
}

// Method names a body-fat estimation formula.
type Method string

const (
	MethodRFM            Method = "rfm"
	MethodNavy           Method = "navy"
	MethodJacksonPollock Method = "jackson_pollock"
	MethodMilitary       Method = "military"
)

// Label is the human-readable method name.
func (m Method) Label() string {
	switch m {
	case MethodRFM:
		return "RFM"
	case MethodNavy:
		return "Navy"
	case MethodJacksonPollock:
		return "Jackson & Pollock"
	case MethodMilitary:
		return "Military"
	}
	return string(m)
}

// Estimates holds the per-method body-fat percentages. Military is
// informational and never takes part in reconciliation.
type Estimates struct {
	RFM            *float64 `json:"rfm"`
	Navy           *float64 `json:"navy"`
	JacksonPollock *float64 `json:"jackson_pollock"`
	Military       *float64 `json:"military"`
}

// Get returns the estimate for a method.
func (e Estimates) Get(m Method) *float64 {
	switch m {
	case MethodRFM:
		return e.RFM
	case MethodNavy:
		return e.Navy
	case MethodJacksonPollock:
		return e.JacksonPollock
	case MethodMilitary:
		return e.Military
	}
	return nil
}

func ptr(v float64) *float64 { return &v }
