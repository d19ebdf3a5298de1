package mapping

import (
	"context"
	"strings"

	"github.com/radcoder/radcoder/internal/domain/extraction"
)

// Classifier supplies corrective attributes for rows the rule ladder
// left below the configured threshold. Implementations live outside the
// core; their availability is never required for correctness.
type Classifier interface {
	Classify(ctx context.Context, descriptionEN, descriptionZH string) (Candidate, error)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, descriptionEN, descriptionZH string) (Candidate, error)

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, descriptionEN, descriptionZH string) (Candidate, error) {
	return f(ctx, descriptionEN, descriptionZH)
}

// Candidate is one classifier suggestion. Empty fields mean no opinion.
type Candidate struct {
	BodyPart   string `json:"body_part"`
	Modality   string `json:"modality"`
	Laterality string `json:"laterality"`
	Contrast   string `json:"contrast"`
}

// reclassify asks the classifier for corrective attributes, re-resolves
// both catalogs with them, and adopts a system's new result only when
// it grades strictly better than the rule-based one. Classifier output
// is graded Low at best, never as an exact match, and a classifier
// error leaves both results untouched.
func (e *Engine) reclassify(ctx context.Context, study Study, attrs extraction.Attributes, loinc, pcs MappingResult) (MappingResult, MappingResult, bool) {
	cand, err := e.classifier.Classify(ctx, study.Description, study.ChineseDescription)
	if err != nil {
		return loinc, pcs, false
	}
	corrected, changed := applyCandidate(attrs, cand)
	if !changed {
		return loinc, pcs, false
	}

	adopted := false
	if next := capLow(e.loinc.Resolve(corrected)); next.Confidence.rank() > loinc.Confidence.rank() {
		loinc = next
		adopted = true
	}
	if next := capLow(e.icd10pcs.Resolve(corrected)); next.Confidence.rank() > pcs.Confidence.rank() {
		pcs = next
		adopted = true
	}
	return loinc, pcs, adopted
}

func capLow(res MappingResult) MappingResult {
	if res.Confidence == ConfidenceHigh {
		res.Confidence = ConfidenceLow
	}
	return res
}

// applyCandidate overlays the classifier's non-empty fields onto a copy
// of the extracted attributes. Unparseable fields are ignored.
func applyCandidate(attrs extraction.Attributes, cand Candidate) (extraction.Attributes, bool) {
	changed := false
	if part := strings.TrimSpace(cand.BodyPart); part != "" {
		attrs.BodyParts = []string{part}
		changed = true
	}
	if mod := strings.TrimSpace(cand.Modality); mod != "" {
		attrs.PrimaryModality = extraction.CanonicalModality(mod)
		changed = true
	}
	if lat := parseLaterality(cand.Laterality); lat != "" {
		attrs.Laterality = lat
		changed = true
	}
	if c := parseContrast(cand.Contrast); c != "" {
		attrs.Contrast = c
		changed = true
	}
	return attrs, changed
}

func parseLaterality(s string) extraction.Laterality {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return extraction.LateralityLeft
	case "right":
		return extraction.LateralityRight
	case "bilateral":
		return extraction.LateralityBilateral
	case "none":
		return extraction.LateralityNone
	}
	return ""
}

func parseContrast(s string) extraction.Contrast {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return extraction.ContrastYes
	case "no", "n":
		return extraction.ContrastNo
	case "both", "n+y", "y+n":
		return extraction.ContrastBoth
	}
	return ""
}
