package mapping

import (
	"fmt"
	"strings"

	"github.com/radcoder/radcoder/internal/domain/extraction"
	"github.com/radcoder/radcoder/internal/platform/tabular"
)

// Input column names. modality and the English description are
// required; the rest are optional.
const (
	colValueCode       = "value_code"
	colModality        = "modality"
	colDescription     = "Study Description"
	colChineseDesc     = "Chinese Study Description"
	colContrast        = "Contrast"
	colCombineModality = "Combine Modality"
)

// OutputColumns is the exact output header, in order. Input fields echo
// back first, derived attributes next, then the two code blocks.
var OutputColumns = []string{
	colValueCode,
	colModality,
	colDescription,
	colChineseDesc,
	colContrast,
	colCombineModality,
	"Primary Modality",
	"Expanded Description",
	"Body Parts",
	"Laterality",
	"LOINC Code",
	"LOINC Name",
	"LOINC Component",
	"LOINC Method",
	"Mapping Confidence",
	"Has Issues",
	"Issues",
	"ICD-10-PCS Code",
	"ICD-10-PCS Description",
	"ICD-10-PCS Section",
	"ICD-10-PCS Body System",
	"ICD-10-PCS Root Type",
	"ICD-10-PCS Confidence",
}

// DecodeStudies reads study rows from a table. Rows missing a required
// cell reject the whole table with the row number; value_code cells
// left empty are autogenerated as ROW_n so every output row stays
// addressable.
func DecodeStudies(t *tabular.Table) ([]Study, error) {
	var missing []string
	for _, name := range []string{colModality, colDescription} {
		if t.ColumnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	valueCode := t.ColumnIndex(colValueCode)
	modality := t.ColumnIndex(colModality)
	description := t.ColumnIndex(colDescription)
	chinese := t.ColumnIndex(colChineseDesc)
	contrast := t.ColumnIndex(colContrast)
	combine := t.ColumnIndex(colCombineModality)

	studies := make([]Study, 0, len(t.Rows))
	for i, row := range t.Rows {
		s := Study{
			ValueCode:          strings.TrimSpace(t.Cell(row, valueCode)),
			Modality:           strings.TrimSpace(t.Cell(row, modality)),
			Description:        strings.TrimSpace(t.Cell(row, description)),
			ChineseDescription: strings.TrimSpace(t.Cell(row, chinese)),
			Contrast:           strings.TrimSpace(t.Cell(row, contrast)),
			CombineModality:    strings.TrimSpace(t.Cell(row, combine)),
		}
		if s.Modality == "" {
			return nil, fmt.Errorf("row %d: missing required field %s", i+1, colModality)
		}
		if s.Description == "" {
			return nil, fmt.Errorf("row %d: missing required field %s", i+1, colDescription)
		}
		if s.ValueCode == "" {
			s.ValueCode = fmt.Sprintf("ROW_%d", i+1)
		}
		studies = append(studies, s)
	}
	return studies, nil
}

// EncodeResults renders results as the output table in OutputColumns
// order.
func EncodeResults(results []RowResult) *tabular.Table {
	t := &tabular.Table{
		Header: append([]string(nil), OutputColumns...),
		Rows:   make([][]string, 0, len(results)),
	}
	for _, r := range results {
		t.Rows = append(t.Rows, encodeRow(r))
	}
	return t
}

func encodeRow(r RowResult) []string {
	var loincCode, loincName, loincComponent, loincMethod string
	if rec := r.LOINC.Record; rec != nil {
		loincCode, loincName, loincComponent, loincMethod = rec.Code, rec.Display, rec.Component, rec.Method
	}
	var pcsCode, pcsDesc, pcsSection, pcsBodySystem, pcsRootType string
	if rec := r.ICD10PCS.Record; rec != nil {
		pcsCode, pcsDesc = rec.Code, rec.Display
		pcsSection, pcsBodySystem, pcsRootType = rec.Section, rec.BodySystem, rec.RootType
	}

	hasIssues := "No"
	if r.HasIssues() {
		hasIssues = "Yes"
	}
	laterality := string(r.Laterality)
	if r.Laterality == extraction.LateralityNone || r.Laterality == "" {
		laterality = ""
	}

	return []string{
		r.Study.ValueCode,
		r.Study.Modality,
		r.Study.Description,
		r.Study.ChineseDescription,
		r.Study.Contrast,
		r.Study.CombineModality,
		r.PrimaryModality,
		r.ExpandedDescription,
		strings.Join(r.BodyParts, ", "),
		laterality,
		loincCode,
		loincName,
		loincComponent,
		loincMethod,
		string(r.LOINC.Confidence),
		hasIssues,
		RenderIssues(r.Issues),
		pcsCode,
		pcsDesc,
		pcsSection,
		pcsBodySystem,
		pcsRootType,
		string(r.ICD10PCS.Confidence),
	}
}
