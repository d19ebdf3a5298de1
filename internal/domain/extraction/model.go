package extraction

import "strings"

// Laterality is the sidedness of the examined body part.
type Laterality string

const (
	LateralityLeft      Laterality = "Left"
	LateralityRight     Laterality = "Right"
	LateralityBilateral Laterality = "Bilateral"
	LateralityNone      Laterality = "None"
)

// Contrast is the extracted contrast usage of a study.
type Contrast string

const (
	ContrastYes     Contrast = "Yes"
	ContrastNo      Contrast = "No"
	ContrastBoth    Contrast = "Both"
	ContrastUnknown Contrast = "Unknown"
)

// Attributes is the structured result of extraction. It is complete for
// every input: anything unrecoverable degrades to None/Unknown rather
// than failing.
type Attributes struct {
	// BodyParts holds canonical body-part identifiers, deduplicated, in
	// first-seen order. English-derived parts come before Chinese-only
	// ones.
	BodyParts []string

	Laterality Laterality
	Contrast   Contrast

	// PrimaryModality is the canonical modality code of the study.
	PrimaryModality string

	// CombinedModalities lists additional canonical modality codes for
	// multi-modality studies. It never contains PrimaryModality.
	CombinedModalities []string

	// AmbiguousLaterality is set when both left and right markers were
	// found and the first by text position won.
	AmbiguousLaterality bool

	// AmbiguousContrast is set when the contrast field was present but
	// malformed, or when an authoritative N+Y field conflicted with a
	// single-sided keyword in the text.
	AmbiguousContrast bool
}

// Canonical modality codes used as the modality dimension of catalog
// keys. Alias spellings (CR, DX, MR, DXA) fold into these so they can
// never cause a spurious lookup miss.
const (
	ModalityXR  = "XR"
	ModalityCT  = "CT"
	ModalityMRI = "MRI"
	ModalityUS  = "US"
	ModalityRF  = "RF"
	ModalityXA  = "XA"
	ModalityBMD = "BMD"
	ModalityOT  = "OT"
)

// CanonicalModality folds a raw modality code into its canonical form.
// Unrecognized codes are trimmed and upper-cased but otherwise kept, so
// they still produce deterministic (if unmatched) lookup keys.
func CanonicalModality(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "CR", "DX", "XR":
		return ModalityXR
	case "CT":
		return ModalityCT
	case "MR", "MRI":
		return ModalityMRI
	case "US":
		return ModalityUS
	case "RF":
		return ModalityRF
	case "XA":
		return ModalityXA
	case "BMD", "DXA":
		return ModalityBMD
	case "OT":
		return ModalityOT
	default:
		return strings.ToUpper(strings.TrimSpace(code))
	}
}

// modalityRank orders modalities for choosing the primary one when a
// single field lists several (e.g. "CT/RF"). Cross-sectional studies
// outrank projections.
func modalityRank(canonical string) int {
	switch canonical {
	case ModalityCT:
		return 8
	case ModalityMRI:
		return 7
	case ModalityUS:
		return 6
	case ModalityXA:
		return 5
	case ModalityRF:
		return 4
	case ModalityXR:
		return 3
	case ModalityBMD:
		return 2
	case ModalityOT:
		return 1
	default:
		return 0
	}
}

// splitModalityList splits a delimited modality list ("RF,CT", "CT/MR")
// into canonical codes, preserving order and dropping duplicates and
// empty items.
func splitModalityList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '/' || r == '+' || r == ';' || r == ' '
	})
	var out []string
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		m := CanonicalModality(f)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
