package terminology

import (
	"fmt"
	"sort"
	"strings"
)

// Table is the vocabulary consulted by the normalizer and the attribute
// extractor. It is built once at startup and read-only afterwards, so it
// can be shared across workers without locking.
type Table struct {
	entries map[string]Entry    // lower-cased token -> entry
	tokens  []string            // lower-cased tokens, longest first
	blocked map[string][]string // lower-cased token -> blocking context phrases
}

// NewTable builds a Table from entries and blocks. It enforces the
// vocabulary invariants:
//
//   - every entry has a non-empty token, a non-empty expansion and a
//     known tag;
//   - no two entries share a token (case-insensitive);
//   - every expansion is a fixed point of the normalizer, so one
//     normalization pass fully expands any input.
func NewTable(entries []Entry, blocks []Block) (*Table, error) {
	t := &Table{
		entries: make(map[string]Entry, len(entries)),
		blocked: make(map[string][]string),
	}
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return nil, err
		}
		key := strings.ToLower(e.Token)
		if _, dup := t.entries[key]; dup {
			return nil, fmt.Errorf("duplicate terminology token %q", e.Token)
		}
		t.entries[key] = e
		t.tokens = append(t.tokens, key)
	}
	sort.Slice(t.tokens, func(i, j int) bool {
		if len(t.tokens[i]) != len(t.tokens[j]) {
			return len(t.tokens[i]) > len(t.tokens[j])
		}
		return t.tokens[i] < t.tokens[j]
	})
	for _, b := range blocks {
		key := strings.ToLower(b.Token)
		for _, c := range b.Contexts {
			if c == "" {
				return nil, fmt.Errorf("terminology block for %q has empty context", b.Token)
			}
			t.blocked[key] = append(t.blocked[key], strings.ToLower(c))
		}
	}

	n := NewNormalizer(t)
	for _, e := range t.entries {
		if got := n.Normalize(e.Expansion); got != e.Expansion {
			return nil, fmt.Errorf("terminology expansion %q is not fully expanded (normalizes to %q); expansions must be canonical", e.Expansion, got)
		}
	}
	return t, nil
}

// Len returns the number of vocabulary entries.
func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the entry for a token, case-insensitively.
func (t *Table) Lookup(token string) (Entry, bool) {
	e, ok := t.entries[strings.ToLower(token)]
	return e, ok
}

// Entries returns all entries in deterministic (longest token first)
// order. The returned slice is a copy.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.tokens))
	for _, tok := range t.tokens {
		out = append(out, t.entries[tok])
	}
	return out
}

// BodyParts returns the distinct canonical body-part identifiers known
// to the table, sorted.
func (t *Table) BodyParts() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range t.entries {
		if e.Tag == TagBodyPart && !seen[e.Expansion] {
			seen[e.Expansion] = true
			out = append(out, e.Expansion)
		}
	}
	sort.Strings(out)
	return out
}

// Match is one accepted occurrence of a vocabulary token in a text.
type Match struct {
	Entry Entry
	Pos   int // byte offset in the scanned text
}

// FindAll scans text for entries carrying the given tag. Longer tokens
// are tried first and accepted spans are masked, so a term contained in
// an already-matched longer term never double-matches. Matches are
// returned in text order.
func (t *Table) FindAll(text string, tag Tag) []Match {
	if text == "" {
		return nil
	}
	low := strings.ToLower(text)
	var accepted []Match
	var spans [][2]int

	for _, tok := range t.tokens {
		e := t.entries[tok]
		if e.Tag != tag {
			continue
		}
		for from := 0; ; {
			i := strings.Index(low[from:], tok)
			if i < 0 {
				break
			}
			pos := from + i
			end := pos + len(tok)
			from = pos + 1
			if overlaps(spans, pos, end) {
				continue
			}
			if !t.boundaryOK(low, pos, tok) || t.isBlocked(low, pos, tok) {
				continue
			}
			accepted = append(accepted, Match{Entry: e, Pos: pos})
			spans = append(spans, [2]int{pos, end})
		}
	}
	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Pos < accepted[j].Pos })
	return accepted
}

// matchAt reports the lower-cased token matching at byte offset pos of
// low (the lower-cased text), honoring boundaries and blocks. Used by
// the normalizer, which scans left to right and wants the longest token
// anchored at pos.
func (t *Table) matchAt(low string, pos int) (Entry, int, bool) {
	rest := low[pos:]
	for _, tok := range t.tokens {
		if !strings.HasPrefix(rest, tok) {
			continue
		}
		if !t.boundaryOK(low, pos, tok) || t.isBlocked(low, pos, tok) {
			continue
		}
		return t.entries[tok], len(tok), true
	}
	return Entry{}, 0, false
}

// boundaryOK enforces word boundaries on the ASCII edges of a token.
// A token edge that is a CJK rune carries its own boundary and may abut
// anything.
func (t *Table) boundaryOK(low string, pos int, tok string) bool {
	if isWordByte(tok[0]) {
		if pos > 0 && isWordByte(low[pos-1]) {
			return false
		}
	}
	if isWordByte(tok[len(tok)-1]) {
		end := pos + len(tok)
		if end < len(low) && isWordByte(low[end]) {
			return false
		}
	}
	return true
}

func (t *Table) isBlocked(low string, pos int, tok string) bool {
	contexts := t.blocked[tok]
	if len(contexts) == 0 {
		return false
	}
	end := pos + len(tok)
	for _, c := range contexts {
		for from := 0; ; {
			i := strings.Index(low[from:], c)
			if i < 0 {
				break
			}
			cStart := from + i
			cEnd := cStart + len(c)
			if cStart < end && pos < cEnd {
				return true
			}
			from = cStart + 1
		}
	}
	return false
}

func overlaps(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && s[0] < end {
			return true
		}
	}
	return false
}

// isWordByte reports whether b is an ASCII letter or digit. Multi-byte
// (CJK) runes are deliberately not word bytes: they form their own
// boundaries.
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
