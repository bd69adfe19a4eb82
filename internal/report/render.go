// Package report renders a consultation analysis as markdown and converts
// that markdown into PDF and DOCX documents.
package report

import (
	"fmt"
	"strings"

	"github.com/clinscribe/clinscribe/internal/analysis"
)

// Render produces the consultation summary markdown. Pure and
// deterministic: the same analysis always renders to identical bytes, and
// every section appears regardless of how sparse the record is.
func Render(a analysis.ConsultationAnalysis) string {
	var b strings.Builder

	b.WriteString("# Medical Consultation Summary\n")
	b.WriteString("\n")
	b.WriteString("## Diagnosis\n")
	fmt.Fprintf(&b, "**Condition:** %s\n", a.Diagnosis.Condition)
	b.WriteString("\n")
	b.WriteString("**Clinical Findings:**\n")
	writeList(&b, a.Diagnosis.Findings)
	b.WriteString("\n")
	b.WriteString("## Prescribed Medications\n")
	writeMedications(&b, a.Medications)
	b.WriteString("\n")
	b.WriteString("## Restrictions & Precautions\n")
	writeList(&b, a.Restrictions)
	b.WriteString("\n")
	b.WriteString("## Follow-up Plan\n")
	fmt.Fprintf(&b, "**Next Visit:** %s\n", a.FollowUp.Timing)
	fmt.Fprintf(&b, "**Instructions:** %s\n", a.FollowUp.Instructions)
	b.WriteString("\n")
	b.WriteString("## Safety Alerts\n")
	b.WriteString("### Critical Symptoms to Watch:\n")
	writeList(&b, a.SafetyAlerts.CriticalSymptoms)
	b.WriteString("\n")
	b.WriteString("### Potential Drug Interactions:\n")
	writeList(&b, a.SafetyAlerts.DrugInteractions)
	b.WriteString("\n")
	b.WriteString("### Contraindications:\n")
	writeList(&b, a.SafetyAlerts.Contraindications)
	b.WriteString("\n")
	fmt.Fprintf(&b, "**Allergy Check Status:** %s\n", a.SafetyAlerts.AllergiesChecked)

	return b.String()
}

// writeList renders one bullet per item, or the documented empty marker.
func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("None mentioned\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// writeMedications renders each medication with its detail sub-bullets.
// Dosage is omitted when it is the placeholder; duration and timing rows
// always appear.
func writeMedications(b *strings.Builder, meds []analysis.Medication) {
	if len(meds) == 0 {
		b.WriteString("No medications prescribed\n")
		return
	}
	for _, med := range meds {
		fmt.Fprintf(b, "- **%s** (%s)\n", med.Name, med.Type)
		if med.Dosage != analysis.NotMentioned {
			fmt.Fprintf(b, "  - Dosage: %s\n", med.Dosage)
		}
		fmt.Fprintf(b, "  - Duration: %s\n", med.Duration)
		fmt.Fprintf(b, "  - Timing: %s\n", med.Timing)
	}
}
