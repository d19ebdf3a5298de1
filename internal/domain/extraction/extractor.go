package extraction

import (
	"strings"

	"github.com/radcoder/radcoder/internal/domain/terminology"
)

// Input carries the per-row fields extraction works from. Texts are
// expected to be normalized already; extraction itself never rewrites
// them.
type Input struct {
	TextEN                string // normalized English description
	TextZH                string // normalized Chinese description, optional
	ModalityField         string // raw modality code, e.g. "CR", "MR"
	CombinedModalityField string // optional comma-separated extra modalities
	ContrastField         string // optional Y / N / N+Y
}

// Extractor derives structured attributes from normalized descriptions
// plus the structured row fields. It holds only the immutable
// vocabulary table and is safe for concurrent use.
type Extractor struct {
	table *terminology.Table
}

func NewExtractor(t *terminology.Table) *Extractor {
	return &Extractor{table: t}
}

// Extract always returns a complete attribute set; missing or
// malformed evidence degrades to None/Unknown defaults.
func (x *Extractor) Extract(in Input) Attributes {
	attrs := Attributes{
		Laterality: LateralityNone,
		Contrast:   ContrastUnknown,
	}

	attrs.BodyParts = x.bodyParts(in.TextEN, in.TextZH)
	attrs.Laterality, attrs.AmbiguousLaterality = x.laterality(in.TextEN, in.TextZH)
	x.modalities(in, &attrs)
	x.contrast(in, &attrs)
	return attrs
}

// bodyParts merges the two evidence streams: English matches first in
// text order, then Chinese-only matches appended in their text order.
func (x *Extractor) bodyParts(textEN, textZH string) []string {
	var parts []string
	seen := make(map[string]bool)
	for _, text := range []string{textEN, textZH} {
		for _, m := range x.table.FindAll(text, terminology.TagBodyPart) {
			if seen[m.Entry.Expansion] {
				continue
			}
			seen[m.Entry.Expansion] = true
			parts = append(parts, m.Entry.Expansion)
		}
	}
	return parts
}

// laterality applies bilateral precedence: any bilateral marker in
// either language wins outright. Otherwise a left/right conflict is
// resolved to the first marker by text position (English text scanned
// first) and reported as ambiguous.
func (x *Extractor) laterality(textEN, textZH string) (Laterality, bool) {
	var sides []Laterality
	for _, text := range []string{textEN, textZH} {
		for _, m := range x.table.FindAll(text, terminology.TagLaterality) {
			switch m.Entry.Expansion {
			case terminology.WordBilateral:
				return LateralityBilateral, false
			case terminology.WordLeft:
				sides = append(sides, LateralityLeft)
			case terminology.WordRight:
				sides = append(sides, LateralityRight)
			}
		}
	}
	if len(sides) == 0 {
		return LateralityNone, false
	}
	first := sides[0]
	for _, s := range sides[1:] {
		if s != first {
			return first, true
		}
	}
	return first, false
}

func (x *Extractor) modalities(in Input, attrs *Attributes) {
	fieldList := splitModalityList(in.ModalityField)
	switch len(fieldList) {
	case 0:
		attrs.PrimaryModality = CanonicalModality(in.ModalityField)
	case 1:
		attrs.PrimaryModality = fieldList[0]
	default:
		// A multi-valued modality field: the highest-ranked listed
		// modality is primary, the rest join the combined list.
		primary := fieldList[0]
		for _, m := range fieldList[1:] {
			if modalityRank(m) > modalityRank(primary) {
				primary = m
			}
		}
		attrs.PrimaryModality = primary
	}

	seen := map[string]bool{attrs.PrimaryModality: true}
	for _, m := range append(splitModalityList(in.CombinedModalityField), fieldList...) {
		if seen[m] {
			continue
		}
		seen[m] = true
		attrs.CombinedModalities = append(attrs.CombinedModalities, m)
	}
}

// contrast applies the priority cascade: recognized field value, then
// text keywords in either language, then Unknown. A malformed field
// falls back to the text and is flagged; an authoritative N+Y field
// conflicting with a single-sided keyword is flagged, never silently
// resolved.
func (x *Extractor) contrast(in Input, attrs *Attributes) {
	fromText, textFound := x.textContrast(in.TextEN, in.TextZH)

	field := strings.ToUpper(strings.TrimSpace(in.ContrastField))
	switch field {
	case "":
		if textFound {
			attrs.Contrast = fromText
			if fromText == ContrastBoth {
				attrs.AmbiguousContrast = true
			}
		}
	case "Y":
		attrs.Contrast = ContrastYes
	case "N":
		attrs.Contrast = ContrastNo
	case "N+Y", "Y+N":
		attrs.Contrast = ContrastBoth
		if textFound && fromText != ContrastBoth {
			attrs.AmbiguousContrast = true
		}
	default:
		attrs.AmbiguousContrast = true
		if textFound {
			attrs.Contrast = fromText
		}
	}
}

func (x *Extractor) textContrast(textEN, textZH string) (Contrast, bool) {
	var withSeen, withoutSeen bool
	for _, text := range []string{textEN, textZH} {
		for _, m := range x.table.FindAll(text, terminology.TagContrast) {
			switch m.Entry.Expansion {
			case terminology.PhraseWithContrast:
				withSeen = true
			case terminology.PhraseWithoutContrast:
				withoutSeen = true
			case terminology.PhraseWithWithoutContrast:
				withSeen, withoutSeen = true, true
			}
		}
	}
	switch {
	case withSeen && withoutSeen:
		return ContrastBoth, true
	case withSeen:
		return ContrastYes, true
	case withoutSeen:
		return ContrastNo, true
	default:
		return ContrastUnknown, false
	}
}
