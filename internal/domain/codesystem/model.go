// Package codesystem holds the static code catalogs the mapping resolver
// probes: one Database per coding system, keyed by body part, modality,
// laterality and contrast. Catalogs are built once at startup, from the
// builtin tables, a CSV file or Postgres, and are read-only afterwards.
package codesystem

import (
	"github.com/radcoder/radcoder/internal/domain/extraction"
)

// System identifies a clinical coding system.
type System string

const (
	SystemLOINC    System = "LOINC"
	SystemICD10PCS System = "ICD-10-PCS"
)

// ContrastMarker is the binary contrast dimension of a catalog key. The
// extracted contrast value is richer (Both, Unknown); the resolver maps
// it onto one or two markers when probing.
type ContrastMarker string

const (
	WithContrast    ContrastMarker = "Y"
	WithoutContrast ContrastMarker = "N"
)

// Key addresses one catalog record. Modality is always a canonical code
// (see extraction.CanonicalModality); Laterality defaults to None.
type Key struct {
	BodyPart   string
	Modality   string
	Laterality extraction.Laterality
	Contrast   ContrastMarker
}

// Record is one catalog entry. LOINC records carry Component and Method.
// ICD-10-PCS records carry the section, body system and root type
// characters, derived from the code at build time.
type Record struct {
	System     System `json:"system"`
	Code       string `json:"code"`
	Display    string `json:"display"`
	Component  string `json:"component,omitempty"`
	Method     string `json:"method,omitempty"`
	Section    string `json:"section,omitempty"`
	BodySystem string `json:"body_system,omitempty"`
	RootType   string `json:"root_type,omitempty"`
}

// Row is one source line for building a Database. An empty BodyPart
// marks the modality-generic record used by the resolver's last
// fallback; an empty Laterality means None, an empty Contrast means
// without contrast.
type Row struct {
	BodyPart   string                `json:"body_part"`
	Modality   string                `json:"modality"`
	Laterality extraction.Laterality `json:"laterality,omitempty"`
	Contrast   ContrastMarker        `json:"contrast,omitempty"`
	Code       string                `json:"code"`
	Display    string                `json:"display"`
	Component  string                `json:"component,omitempty"`
	Method     string                `json:"method,omitempty"`
}

// methodDisplays maps canonical modality codes to the method names LOINC
// uses in record text.
var methodDisplays = map[string]string{
	extraction.ModalityXR:  "XR",
	extraction.ModalityCT:  "CT",
	extraction.ModalityMRI: "MRI",
	extraction.ModalityUS:  "US",
	extraction.ModalityRF:  "Fluoro",
	extraction.ModalityXA:  "Angio",
	extraction.ModalityBMD: "DXA",
	extraction.ModalityOT:  "OT",
}

// MethodDisplay returns the LOINC method name for a modality code.
// Unrecognized codes are passed through after canonicalization.
func MethodDisplay(modality string) string {
	canonical := extraction.CanonicalModality(modality)
	if m, ok := methodDisplays[canonical]; ok {
		return m
	}
	return canonical
}

// pcsRootTypes maps canonical modality codes to the root type character
// at position 3 of an imaging ICD-10-PCS code. Modalities absent from
// this map (bone density among them) have no procedure codes at all.
var pcsRootTypes = map[string]byte{
	extraction.ModalityXR:  '0',
	extraction.ModalityRF:  '1',
	extraction.ModalityXA:  '1',
	extraction.ModalityCT:  '2',
	extraction.ModalityMRI: '3',
	extraction.ModalityUS:  '4',
}
