package mapping

import (
	"context"
	"fmt"

	"github.com/radcoder/radcoder/internal/domain/codesystem"
	"github.com/radcoder/radcoder/internal/domain/extraction"
	"github.com/radcoder/radcoder/internal/domain/terminology"
)

// Engine runs the full pipeline for one study row: normalize once per
// language field, extract once, resolve against both catalogs with the
// same attributes, merge the issues. Engines are immutable after
// construction and safe for concurrent use.
type Engine struct {
	normalizer *terminology.Normalizer
	extractor  *extraction.Extractor
	loinc      *Resolver
	icd10pcs   *Resolver

	classifier Classifier
	threshold  int
}

// NewEngine builds an engine over the published read-only tables.
func NewEngine(table *terminology.Table, loinc, icd10pcs *codesystem.Database) *Engine {
	return &Engine{
		normalizer: terminology.NewNormalizer(table),
		extractor:  extraction.NewExtractor(table),
		loinc:      NewResolver(loinc),
		icd10pcs:   NewResolver(icd10pcs),
	}
}

// DefaultClassifierThreshold consults the classifier only for rows both
// catalogs left unresolved.
const DefaultClassifierThreshold = "Low"

// SetClassifier enables the hybrid path. The classifier is consulted
// when the better of the two system confidences grades below the
// threshold: "Low" means fully unresolved rows only, "High" means
// every row without an exact match.
func (e *Engine) SetClassifier(c Classifier, threshold string) error {
	rank, ok := confidenceRank(threshold)
	if !ok {
		return fmt.Errorf("unknown confidence threshold %q", threshold)
	}
	e.classifier = c
	e.threshold = rank
	return nil
}

// MapStudy maps one study row. The context is used only by the optional
// classifier call; rule-based resolution never blocks.
func (e *Engine) MapStudy(ctx context.Context, study Study) RowResult {
	expanded := e.normalizer.Normalize(study.Description)
	var expandedZH string
	if study.ChineseDescription != "" {
		expandedZH = e.normalizer.Normalize(study.ChineseDescription)
	}

	attrs := e.extractor.Extract(extraction.Input{
		TextEN:                expanded,
		TextZH:                expandedZH,
		ModalityField:         study.Modality,
		CombinedModalityField: study.CombineModality,
		ContrastField:         study.Contrast,
	})

	loincRes := e.loinc.Resolve(attrs)
	pcsRes := e.icd10pcs.Resolve(attrs)

	var rowIssues []Issue
	if attrs.AmbiguousLaterality {
		rowIssues = append(rowIssues, Issue{Kind: IssueAmbiguousLaterality})
	}

	if e.classifier != nil && e.needsClassifier(loincRes, pcsRes) {
		var assisted bool
		loincRes, pcsRes, assisted = e.reclassify(ctx, study, attrs, loincRes, pcsRes)
		if assisted {
			rowIssues = append(rowIssues, Issue{Kind: IssueClassifierAssisted})
		}
	}

	return RowResult{
		Study:               study,
		PrimaryModality:     attrs.PrimaryModality,
		ExpandedDescription: expanded,
		BodyParts:           attrs.BodyParts,
		Laterality:          attrs.Laterality,
		LOINC:               loincRes,
		ICD10PCS:            pcsRes,
		Issues:              mergeIssues(rowIssues, loincRes.Issues, pcsRes.Issues),
	}
}

func (e *Engine) needsClassifier(loinc, pcs MappingResult) bool {
	best := loinc.Confidence.rank()
	if r := pcs.Confidence.rank(); r > best {
		best = r
	}
	return best < e.threshold
}
