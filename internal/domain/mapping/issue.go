// Package mapping is the description-to-code engine: the resolver walks
// a code catalog with a deterministic fallback ladder, the engine runs
// it against both catalogs per study row, and the surrounding files add
// batch fan-out, summary statistics, tabular I/O and the HTTP surface.
package mapping

import (
	"strings"

	"github.com/radcoder/radcoder/internal/domain/codesystem"
)

// IssueKind is the closed set of diagnostic reasons a mapping can carry.
type IssueKind string

const (
	IssueBodyPartNotRecognized IssueKind = "BodyPartNotRecognized"
	IssueAmbiguousLaterality   IssueKind = "AmbiguousLaterality"
	IssueContrastAmbiguous     IssueKind = "ContrastAmbiguous"
	IssueCombinedModality      IssueKind = "CombinedModalityPresent"
	IssueMultipleCandidates    IssueKind = "MultipleCandidates"
	IssueGenericCodeUsed       IssueKind = "GenericCodeUsed"
	IssueClassifierAssisted    IssueKind = "ClassifierAssisted"
)

var issueMessages = map[IssueKind]string{
	IssueBodyPartNotRecognized: "No body part identified",
	IssueAmbiguousLaterality:   "Both left and right markers present - used first marker",
	IssueContrastAmbiguous:     "Contrast information ambiguous - code may need separate entries",
	IssueCombinedModality:      "Multiple modalities - used primary modality",
	IssueMultipleCandidates:    "Multiple codes possible",
	IssueGenericCodeUsed:       "Using generic code - specific code not found",
	IssueClassifierAssisted:    "Classifier-assisted mapping - verify manually",
}

// Message returns the human-readable text for the kind.
func (k IssueKind) Message() string {
	if m, ok := issueMessages[k]; ok {
		return m
	}
	return string(k)
}

// Issue is one diagnostic attached to a mapping. System is empty for
// extraction-level issues and for issues raised by both systems.
type Issue struct {
	Kind   IssueKind         `json:"kind"`
	System codesystem.System `json:"system,omitempty"`
	Detail string            `json:"detail,omitempty"`
}

// Text renders the issue without system attribution.
func (i Issue) Text() string {
	if i.Detail != "" {
		return i.Kind.Message() + ": " + i.Detail
	}
	return i.Kind.Message()
}

// RenderIssues joins issues for the Issues output column. System-specific
// issues are prefixed with their system name; shared ones appear bare.
func RenderIssues(issues []Issue) string {
	if len(issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		if issue.System != "" {
			parts = append(parts, string(issue.System)+": "+issue.Text())
		} else {
			parts = append(parts, issue.Text())
		}
	}
	return strings.Join(parts, "; ")
}

// mergeIssues unions extraction-level issues with both resolutions'
// issues, deduplicating by kind. A kind raised by exactly one system
// keeps its attribution; a kind raised by both, or at extraction level,
// is reported once without one. First-seen order is preserved.
func mergeIssues(groups ...[]Issue) []Issue {
	var merged []Issue
	index := make(map[IssueKind]int)
	for _, group := range groups {
		for _, issue := range group {
			at, seen := index[issue.Kind]
			if !seen {
				index[issue.Kind] = len(merged)
				merged = append(merged, issue)
				continue
			}
			if merged[at].System != issue.System {
				merged[at].System = ""
			}
			if merged[at].Detail == "" {
				merged[at].Detail = issue.Detail
			}
		}
	}
	return merged
}
