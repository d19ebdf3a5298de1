package terminology

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalizer expands abbreviations and synonyms in a raw study
// description using a Table. Expansion is greedy longest-match,
// case-insensitive, and idempotent: normalizing an already-normalized
// text returns it unchanged.
type Normalizer struct {
	table *Table
}

func NewNormalizer(t *Table) *Normalizer {
	return &Normalizer{table: t}
}

// Normalize rewrites every vocabulary token in text to its canonical
// expansion. At each position the longest matching token wins;
// unrecognized text passes through verbatim with its spacing and
// punctuation intact. When a replacement would fuse two words (common
// when Chinese tokens expand to English terms), a single space is
// inserted.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	low := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text) + 16)
	expanded := false // previous chunk was an expansion

	for pos := 0; pos < len(text); {
		if e, width, ok := n.table.matchAt(low, pos); ok {
			writeChunk(&b, e.Expansion, expanded)
			expanded = true
			pos += width
			continue
		}
		_, width := utf8.DecodeRuneInString(text[pos:])
		writeChunk(&b, text[pos:pos+width], expanded)
		expanded = false
		pos += width
	}
	return b.String()
}

// writeChunk appends chunk, inserting a space when the previous chunk
// was an expansion and the two would otherwise fuse into one word.
func writeChunk(b *strings.Builder, chunk string, afterExpansion bool) {
	if afterExpansion && chunk != "" {
		last, _ := utf8.DecodeLastRuneInString(b.String())
		first, _ := utf8.DecodeRuneInString(chunk)
		if isWordRune(last) && isWordRune(first) {
			b.WriteByte(' ')
		}
	}
	b.WriteString(chunk)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
