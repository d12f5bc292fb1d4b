package bodyfat

// MethodInfo describes one estimator for listings.
type MethodInfo struct {
	Method      Method
	Description string
	Reconciled  bool
	Male        []string
	Female      []string
}

// Catalog lists the estimators in reconciliation order, followed by the
// informational ones.
func Catalog() []MethodInfo {
	return []MethodInfo{
		{
			Method:      MethodRFM,
			Description: "Relative Fat Mass, height to waist ratio",
			Reconciled:  true,
			Male:        []string{string(Height), string(Waist)},
			Female:      []string{string(Height), string(Waist)},
		},
		{
			Method:      MethodNavy,
			Description: "U.S. Navy (Hodgdon-Beckett) circumference formula",
			Reconciled:  true,
			Male:        []string{string(Height), string(Neck), string(Waist)},
			Female:      []string{string(Height), string(Neck), string(Waist), string(Hip)},
		},
		{
			Method:      MethodJacksonPollock,
			Description: "Jackson & Pollock 3-site skinfolds with the Siri equation",
			Reconciled:  true,
			Male:        []string{string(Pectoral), string(Abdominal), string(Thigh), "age"},
			Female:      []string{string(Triceps), string(Suprailiac), string(Thigh), "age"},
		},
		{
			Method:      MethodMilitary,
			Description: "U.S. Military (DoD) circumference formula",
			Reconciled:  false,
			Male:        []string{string(Height), string(Neck), string(Waist)},
			Female:      []string{string(Height), string(Neck), string(Waist), string(Hip)},
		},
	}
}

// Required returns the inputs a method needs for the given gender.
func (mi MethodInfo) Required(g Gender) []string {
	if g == Female {
		return mi.Female
	}
	return mi.Male
}
