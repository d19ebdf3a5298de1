package codesystem

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Service answers keyword searches over the loaded catalogs. Scoring is
// deterministic: per query token, a code hit outweighs a display hit,
// which outweighs a component or method hit; ties break by code.
type Service struct {
	loinc *Database
	pcs   *Database
}

func NewService(loinc, pcs *Database) *Service {
	return &Service{loinc: loinc, pcs: pcs}
}

type scored struct {
	rec   Record
	score int
}

// SearchLOINC returns LOINC records matching the query, best first,
// with the total match count for pagination.
func (s *Service) SearchLOINC(ctx context.Context, query string, limit, offset int) ([]Record, int, error) {
	return search(ctx, s.loinc, query, limit, offset)
}

// SearchICD10PCS returns procedure code records matching the query.
func (s *Service) SearchICD10PCS(ctx context.Context, query string, limit, offset int) ([]Record, int, error) {
	return search(ctx, s.pcs, query, limit, offset)
}

func search(ctx context.Context, db *Database, query string, limit, offset int) ([]Record, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	tokens := queryTokens(query)
	if len(tokens) == 0 {
		return nil, 0, fmt.Errorf("empty search query")
	}

	var matches []scored
	for _, rec := range db.Records() {
		if sc := scoreRecord(rec, tokens); sc > 0 {
			matches = append(matches, scored{rec: rec, score: sc})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].rec.Code < matches[j].rec.Code
	})

	total := len(matches)
	if offset >= total {
		return []Record{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]Record, 0, end-offset)
	for _, m := range matches[offset:end] {
		out = append(out, m.rec)
	}
	return out, total, nil
}

func queryTokens(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == ';' || r == '\t'
	})
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func scoreRecord(rec Record, tokens []string) int {
	code := strings.ToLower(rec.Code)
	display := strings.ToLower(rec.Display)
	detail := strings.ToLower(rec.Component + " " + rec.Method)

	total := 0
	for _, tok := range tokens {
		switch {
		case strings.Contains(code, tok):
			total += 3
		case strings.Contains(display, tok):
			total += 2
		case strings.Contains(detail, tok):
			total++
		default:
			// Every token must land somewhere or the record is out.
			return 0
		}
	}
	return total
}
