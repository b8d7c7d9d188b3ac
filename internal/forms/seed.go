package forms

import (
	"fmt"
	"time"
)

// SeedForms returns a deterministic set of demo records so the binary
// runs without a forms service behind it.
func SeedForms(n int) []Form {
	titles := []string{
		"Admission Assessment",
		"Nursing Progress Note",
		"Medication Reconciliation",
		"Discharge Summary",
		"Falls Risk Screening",
		"Pain Assessment",
		"Wound Care Chart",
		"Vital Signs Record",
		"Consent for Procedure",
		"Allergy Review",
		"Social Work Referral",
		"Physiotherapy Plan",
	}
	sections := []string{"Assessments", "Notes", "Medications", "Referrals"}
	providers := []string{"J. Okafor", "M. Lindqvist", "A. Reyes", "T. Nakamura"}
	statuses := []Status{StatusCompleted, StatusInProgress, StatusDraft, StatusCompleted}

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	out := make([]Form, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Form{
			ID:        fmt.Sprintf("form-%04d", i+1),
			Title:     fmt.Sprintf("%s #%d", titles[i%len(titles)], i/len(titles)+1),
			Status:    statuses[i%len(statuses)],
			Section:   sections[i%len(sections)],
			Provider:  providers[i%len(providers)],
			UpdatedAt: base.Add(-time.Duration(i) * 7 * time.Hour),
		})
	}
	return out
}
