package codesystem

import (
	"fmt"
	"strings"

	"github.com/radcoder/radcoder/internal/domain/extraction"
	"github.com/radcoder/radcoder/internal/platform/tabular"
)

// CSV catalog column names. modality and code are required; a row with
// an empty body_part cell defines the modality-generic record.
const (
	colBodyPart   = "body_part"
	colModality   = "modality"
	colLaterality = "laterality"
	colContrast   = "contrast"
	colCode       = "code"
	colDisplay    = "display"
	colComponent  = "component"
	colMethod     = "method"
)

// LoadCSV reads catalog source rows from a CSV file. Rows are validated
// later by NewDatabase; this only checks the table shape.
func LoadCSV(path string) ([]Row, error) {
	t, err := tabular.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range []string{colModality, colCode} {
		if t.ColumnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required columns: %s", path, strings.Join(missing, ", "))
	}

	bodyPart := t.ColumnIndex(colBodyPart)
	modality := t.ColumnIndex(colModality)
	laterality := t.ColumnIndex(colLaterality)
	contrast := t.ColumnIndex(colContrast)
	code := t.ColumnIndex(colCode)
	display := t.ColumnIndex(colDisplay)
	component := t.ColumnIndex(colComponent)
	method := t.ColumnIndex(colMethod)

	rows := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, Row{
			BodyPart:   strings.TrimSpace(t.Cell(r, bodyPart)),
			Modality:   strings.TrimSpace(t.Cell(r, modality)),
			Laterality: extraction.Laterality(strings.TrimSpace(t.Cell(r, laterality))),
			Contrast:   ContrastMarker(strings.ToUpper(strings.TrimSpace(t.Cell(r, contrast)))),
			Code:       strings.TrimSpace(t.Cell(r, code)),
			Display:    strings.TrimSpace(t.Cell(r, display)),
			Component:  strings.TrimSpace(t.Cell(r, component)),
			Method:     strings.TrimSpace(t.Cell(r, method)),
		})
	}
	return rows, nil
}
