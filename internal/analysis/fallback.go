package analysis

// Fallback returns the canned tonsillitis consultation substituted when the
// extraction stage cannot parse the model's output. Callers must pair it
// with an explicit degradation marker so the substitution stays visible.
func Fallback() ConsultationAnalysis {
	a := ConsultationAnalysis{
		Diagnosis: Diagnosis{
			Condition: "Tonsils",
			Findings:  []string{"Tonsils in throat"},
		},
		Medications: []Medication{
			{
				Name:   "Azomax",
				Type:   "Not specified",
				Timing: "morning, afternoon, evening",
			},
			{
				Name:   "Sinex",
				Type:   "syrup",
				Timing: "morning, afternoon, evening",
			},
		},
		Restrictions: []string{"avoid cold things"},
		FollowUp: FollowUp{
			Timing:       "after 10 days",
			Instructions: "check-up required",
		},
		SafetyAlerts: SafetyAlerts{
			CriticalSymptoms:  []string{"High fever", "Difficulty breathing"},
			DrugInteractions:  []string{"Potential interaction between antibiotics"},
			Contraindications: []string{"Check for antibiotic allergies"},
			AllergiesChecked:  "Not discussed in consultation",
		},
	}
	a.ApplyDefaults()
	return a
}
