package mapping

import (
	"strings"

	"github.com/radcoder/radcoder/internal/domain/codesystem"
	"github.com/radcoder/radcoder/internal/domain/extraction"
)

// genericAnatomyTerms are broad matches dropped from the candidate list
// when anything more specific matched alongside them.
var genericAnatomyTerms = map[string]bool{
	"Face": true,
	"Bone": true,
}

// candidateBodyParts filters the broad anatomy terms unless that would
// empty the list; a study described only as "facial bones" still
// resolves against its broad term.
func candidateBodyParts(parts []string) []string {
	var specific []string
	for _, p := range parts {
		if !genericAnatomyTerms[p] {
			specific = append(specific, p)
		}
	}
	if len(specific) == 0 {
		return parts
	}
	return specific
}

// contrastProbes maps the four-valued extracted contrast onto the
// binary catalog dimension: the primary marker probed first, and the
// other interpretation worth trying on fallback. No has no fallback;
// a stated no-contrast study must not pick up a with-contrast code.
func contrastProbes(c extraction.Contrast) (primary, relaxed codesystem.ContrastMarker, hasRelaxed bool) {
	switch c {
	case extraction.ContrastYes:
		return codesystem.WithContrast, codesystem.WithoutContrast, true
	case extraction.ContrastNo:
		return codesystem.WithoutContrast, "", false
	case extraction.ContrastBoth:
		return codesystem.WithContrast, codesystem.WithoutContrast, true
	default:
		return codesystem.WithoutContrast, codesystem.WithContrast, true
	}
}

// Resolver walks one catalog with the relaxation ladder: exact key,
// contrast relaxed, laterality relaxed, modality-generic, not found.
// Resolve is pure; identical attributes always give identical results.
type Resolver struct {
	db *codesystem.Database
}

func NewResolver(db *codesystem.Database) *Resolver {
	return &Resolver{db: db}
}

// System reports which catalog this resolver serves.
func (r *Resolver) System() codesystem.System { return r.db.System() }

// Resolve maps one attribute set to a graded result. The first step
// with any hit wins; within it, candidates are probed in body-part
// order, the first match is the record and the rest become alternates.
func (r *Resolver) Resolve(attrs extraction.Attributes) MappingResult {
	system := r.db.System()
	candidates := candidateBodyParts(attrs.BodyParts)
	primary, relaxed, hasRelaxed := contrastProbes(attrs.Contrast)
	laterality := attrs.Laterality
	if laterality == "" {
		laterality = extraction.LateralityNone
	}

	exact := func(part string) (codesystem.Record, bool) {
		return r.db.Lookup(codesystem.Key{
			BodyPart:   part,
			Modality:   attrs.PrimaryModality,
			Laterality: laterality,
			Contrast:   primary,
		})
	}
	contrastRelaxed := func(part string) (codesystem.Record, bool) {
		return r.db.Lookup(codesystem.Key{
			BodyPart:   part,
			Modality:   attrs.PrimaryModality,
			Laterality: laterality,
			Contrast:   relaxed,
		})
	}
	lateralityRelaxed := func(part string) (codesystem.Record, bool) {
		if rec, ok := r.db.Lookup(codesystem.Key{
			BodyPart:   part,
			Modality:   attrs.PrimaryModality,
			Laterality: extraction.LateralityNone,
			Contrast:   primary,
		}); ok {
			return rec, true
		}
		if !hasRelaxed {
			return codesystem.Record{}, false
		}
		return r.db.Lookup(codesystem.Key{
			BodyPart:   part,
			Modality:   attrs.PrimaryModality,
			Laterality: extraction.LateralityNone,
			Contrast:   relaxed,
		})
	}

	record, alternates, found := probeStep(candidates, exact)
	fallback := false
	if !found && hasRelaxed {
		if record, alternates, found = probeStep(candidates, contrastRelaxed); found {
			fallback = true
		}
	}
	if !found && laterality != extraction.LateralityNone {
		if record, alternates, found = probeStep(candidates, lateralityRelaxed); found {
			fallback = true
		}
	}
	if !found {
		if generic, ok := r.db.Generic(attrs.PrimaryModality); ok {
			record, alternates, found, fallback = generic, nil, true, true
		}
	}

	var res MappingResult
	switch {
	case found && !fallback:
		res = MappingResult{Record: &record, Confidence: ConfidenceHigh}
	case found:
		res = MappingResult{Record: &record, Confidence: ConfidenceLow}
	default:
		res = MappingResult{Confidence: ConfidenceNone}
	}

	if len(attrs.BodyParts) == 0 {
		res.Issues = append(res.Issues, Issue{Kind: IssueBodyPartNotRecognized, System: system})
	}
	if len(alternates) > 0 {
		res.Issues = append(res.Issues, Issue{
			Kind:   IssueMultipleCandidates,
			System: system,
			Detail: strings.Join(alternates, ", "),
		})
	}
	if found && fallback {
		res.Issues = append(res.Issues, Issue{Kind: IssueGenericCodeUsed, System: system})
	}
	if len(attrs.CombinedModalities) > 0 {
		res.Issues = append(res.Issues, Issue{Kind: IssueCombinedModality, System: system})
	}
	if attrs.Contrast == extraction.ContrastUnknown ||
		attrs.Contrast == extraction.ContrastBoth ||
		attrs.AmbiguousContrast {
		res.Issues = append(res.Issues, Issue{Kind: IssueContrastAmbiguous, System: system})
	}
	return res
}

// probeStep probes every candidate in order. The first hit is the
// winner; later hits contribute their body part as an alternate.
func probeStep(candidates []string, probe func(string) (codesystem.Record, bool)) (codesystem.Record, []string, bool) {
	var (
		winner     codesystem.Record
		found      bool
		alternates []string
	)
	for _, part := range candidates {
		rec, ok := probe(part)
		if !ok {
			continue
		}
		if !found {
			winner, found = rec, true
			continue
		}
		alternates = append(alternates, part)
	}
	return winner, alternates, found
}
