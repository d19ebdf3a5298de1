package mapping

import "fmt"

// Summary aggregates one result set. Mapped means a record was produced
// at any confidence; the two systems count independently.
type Summary struct {
	TotalStudies       int            `json:"total_studies"`
	LOINCMapped        int            `json:"loinc_mapped"`
	ICD10PCSMapped     int            `json:"icd10pcs_mapped"`
	BothMapped         int            `json:"both_mapped"`
	WithIssues         int            `json:"with_issues"`
	ClassifierAssisted int            `json:"classifier_assisted"`
	LOINCHigh          int            `json:"loinc_high"`
	LOINCLow           int            `json:"loinc_low"`
	LOINCNone          int            `json:"loinc_none"`
	ICD10PCSHigh       int            `json:"icd10pcs_high"`
	ICD10PCSLow        int            `json:"icd10pcs_low"`
	ICD10PCSNone       int            `json:"icd10pcs_none"`
	LOINCRate          string         `json:"loinc_rate"`
	ICD10PCSRate       string         `json:"icd10pcs_rate"`
	BothRate           string         `json:"both_rate"`
	ModalityCounts     map[string]int `json:"modality_distribution"`
}

// Summarize computes the aggregate view of a result set.
func Summarize(results []RowResult) Summary {
	s := Summary{
		TotalStudies:   len(results),
		ModalityCounts: make(map[string]int),
	}
	for _, r := range results {
		loincMapped := r.LOINC.Record != nil
		pcsMapped := r.ICD10PCS.Record != nil
		if loincMapped {
			s.LOINCMapped++
		}
		if pcsMapped {
			s.ICD10PCSMapped++
		}
		if loincMapped && pcsMapped {
			s.BothMapped++
		}
		if r.HasIssues() {
			s.WithIssues++
		}
		if r.ClassifierAssisted() {
			s.ClassifierAssisted++
		}
		switch r.LOINC.Confidence {
		case ConfidenceHigh:
			s.LOINCHigh++
		case ConfidenceLow:
			s.LOINCLow++
		default:
			s.LOINCNone++
		}
		switch r.ICD10PCS.Confidence {
		case ConfidenceHigh:
			s.ICD10PCSHigh++
		case ConfidenceLow:
			s.ICD10PCSLow++
		default:
			s.ICD10PCSNone++
		}
		s.ModalityCounts[r.PrimaryModality]++
	}
	s.LOINCRate = percent(s.LOINCMapped, s.TotalStudies)
	s.ICD10PCSRate = percent(s.ICD10PCSMapped, s.TotalStudies)
	s.BothRate = percent(s.BothMapped, s.TotalStudies)
	return s
}

func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}
