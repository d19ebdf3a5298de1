package terminology

import "fmt"

// Tag classifies the signal a vocabulary token carries. The normalizer
// rewrites every matched token the same way regardless of tag; the
// attribute extractor uses the tag to decide which attribute a match
// feeds.
type Tag string

const (
	// TagBodyPart marks a token whose expansion is a canonical body-part
	// identifier (e.g. "c-spine" -> "Cervical spine").
	TagBodyPart Tag = "body_part"

	// TagLaterality marks a sidedness marker. Expansions are always one
	// of "Left", "Right" or "Bilateral".
	TagLaterality Tag = "laterality"

	// TagContrast marks a contrast-usage phrase. Expansions are
	// "with contrast", "without contrast" or "with and without contrast".
	TagContrast Tag = "contrast"

	// TagGeneric marks plain abbreviations with no attribute meaning
	// (e.g. "w/o" -> "without").
	TagGeneric Tag = "generic"
)

// Canonical laterality expansions produced by TagLaterality entries.
const (
	WordLeft      = "Left"
	WordRight     = "Right"
	WordBilateral = "Bilateral"
)

// Canonical contrast expansions produced by TagContrast entries.
const (
	PhraseWithContrast        = "with contrast"
	PhraseWithoutContrast     = "without contrast"
	PhraseWithWithoutContrast = "with and without contrast"
)

// Entry is a single vocabulary row: a case-insensitive token (possibly
// multi-word, possibly Chinese) and the canonical expansion the
// normalizer rewrites it to.
type Entry struct {
	Token     string `yaml:"token" json:"token"`
	Expansion string `yaml:"expansion" json:"expansion"`
	Tag       Tag    `yaml:"tag" json:"tag"`
}

func (e Entry) validate() error {
	if e.Token == "" {
		return fmt.Errorf("terminology entry has empty token")
	}
	if e.Expansion == "" {
		return fmt.Errorf("terminology entry %q has empty expansion", e.Token)
	}
	switch e.Tag {
	case TagBodyPart, TagLaterality, TagContrast, TagGeneric:
		return nil
	default:
		return fmt.Errorf("terminology entry %q has unknown tag %q", e.Token, e.Tag)
	}
}

// Block suppresses a token inside known false-positive contexts. A match
// is rejected when any context phrase occurs in the text overlapping the
// matched span, e.g. "neck" inside "femoral neck", or "手" (hand) inside
// "手術" (surgery).
type Block struct {
	Token    string   `yaml:"token" json:"token"`
	Contexts []string `yaml:"contexts" json:"contexts"`
}
