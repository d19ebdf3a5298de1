package mapping

import (
	"github.com/radcoder/radcoder/internal/domain/codesystem"
	"github.com/radcoder/radcoder/internal/domain/extraction"
)

// Confidence grades how a code was found: High for an exact-key hit,
// Low for any fallback hit, None for a miss.
type Confidence string

const (
	ConfidenceHigh Confidence = "High"
	ConfidenceLow  Confidence = "Low"
	ConfidenceNone Confidence = "None"
)

// confidenceRank orders grades for threshold comparisons. Medium is
// accepted as a configuration value between High and Low even though
// the resolver never produces it.
func confidenceRank(c string) (int, bool) {
	switch c {
	case string(ConfidenceHigh):
		return 3, true
	case "Medium":
		return 2, true
	case string(ConfidenceLow):
		return 1, true
	case string(ConfidenceNone):
		return 0, true
	}
	return 0, false
}

func (c Confidence) rank() int {
	r, _ := confidenceRank(string(c))
	return r
}

// MappingResult is the outcome of resolving one study against one
// catalog. Record is nil on a miss. Created fresh per (row, system) and
// never mutated after return.
type MappingResult struct {
	Record     *codesystem.Record `json:"record,omitempty"`
	Confidence Confidence         `json:"confidence"`
	Issues     []Issue            `json:"issues,omitempty"`
}

// Study is one input row. ValueCode passes through untouched; Modality
// and Description are required, the rest optional.
type Study struct {
	ValueCode          string `json:"value_code"`
	Modality           string `json:"modality"`
	Description        string `json:"description"`
	ChineseDescription string `json:"chinese_description,omitempty"`
	Contrast           string `json:"contrast,omitempty"`
	CombineModality    string `json:"combine_modality,omitempty"`
}

// RowResult is the complete mapped output for one study: the input
// echoed back, the derived attributes, both system results and the
// merged issue list.
type RowResult struct {
	Study               Study                 `json:"study"`
	PrimaryModality     string                `json:"primary_modality"`
	ExpandedDescription string                `json:"expanded_description"`
	BodyParts           []string              `json:"body_parts"`
	Laterality          extraction.Laterality `json:"laterality"`
	LOINC               MappingResult         `json:"loinc"`
	ICD10PCS            MappingResult         `json:"icd10pcs"`
	Issues              []Issue               `json:"issues,omitempty"`
}

// HasIssues reports whether the merged issue list is non-empty.
func (r RowResult) HasIssues() bool { return len(r.Issues) > 0 }

// ClassifierAssisted reports whether the classifier contributed to
// either system's result.
func (r RowResult) ClassifierAssisted() bool {
	for _, issue := range r.Issues {
		if issue.Kind == IssueClassifierAssisted {
			return true
		}
	}
	return false
}
