// Package analysis defines the structured consultation record produced by
// the extraction stage and consumed by the report renderers.
package analysis

// Placeholder values shown in reports when the consultation did not mention
// a field. Rendered output never contains empty strings.
const (
	NotMentioned = "Not mentioned"
	NotChecked   = "Not checked"
)

type ConsultationAnalysis struct {
	Diagnosis    Diagnosis    `json:"diagnosis"`
	Medications  []Medication `json:"medications"`
	Restrictions []string     `json:"restrictions"`
	FollowUp     FollowUp     `json:"follow_up"`
	SafetyAlerts SafetyAlerts `json:"safety_alerts"`
}

type Diagnosis struct {
	Condition string   `json:"condition"`
	Findings  []string `json:"findings"`
}

type Medication struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration"`
	Timing   string `json:"timing"`
}

type FollowUp struct {
	Timing       string `json:"timing"`
	Instructions string `json:"instructions"`
}

type SafetyAlerts struct {
	CriticalSymptoms  []string `json:"critical_symptoms"`
	DrugInteractions  []string `json:"drug_interactions"`
	Contraindications []string `json:"contraindications"`
	AllergiesChecked  string   `json:"allergies_checked"`
}

// ApplyDefaults fills absent fields with the documented placeholders and
// normalizes nil lists to empty ones. Called once at the decode boundary,
// never at render time.
func (a *ConsultationAnalysis) ApplyDefaults() {
	if a.Diagnosis.Condition == "" {
		a.Diagnosis.Condition = NotMentioned
	}
	if a.Diagnosis.Findings == nil {
		a.Diagnosis.Findings = []string{}
	}
	if a.Medications == nil {
		a.Medications = []Medication{}
	}
	for i := range a.Medications {
		m := &a.Medications[i]
		if m.Name == "" {
			m.Name = NotMentioned
		}
		if m.Type == "" {
			m.Type = NotMentioned
		}
		if m.Dosage == "" {
			m.Dosage = NotMentioned
		}
		if m.Duration == "" {
			m.Duration = NotMentioned
		}
		if m.Timing == "" {
			m.Timing = NotMentioned
		}
	}
	if a.Restrictions == nil {
		a.Restrictions = []string{}
	}
	if a.FollowUp.Timing == "" {
		a.FollowUp.Timing = NotMentioned
	}
	if a.FollowUp.Instructions == "" {
		a.FollowUp.Instructions = NotMentioned
	}
	if a.SafetyAlerts.CriticalSymptoms == nil {
		a.SafetyAlerts.CriticalSymptoms = []string{}
	}
	if a.SafetyAlerts.DrugInteractions == nil {
		a.SafetyAlerts.DrugInteractions = []string{}
	}
	if a.SafetyAlerts.Contraindications == nil {
		a.SafetyAlerts.Contraindications = []string{}
	}
	if a.SafetyAlerts.AllergiesChecked == "" {
		a.SafetyAlerts.AllergiesChecked = NotChecked
	}
}
