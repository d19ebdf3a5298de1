package mapping

import (
	"strings"
	"testing"

	"github.com/radcoder/radcoder/internal/domain/codesystem"
	"github.com/radcoder/radcoder/internal/domain/extraction"
	"github.com/radcoder/radcoder/internal/platform/tabular"
)

func cellAt(t *testing.T, table *tabular.Table, row int, column string) string {
	t.Helper()
	idx := table.ColumnIndex(column)
	if idx < 0 {
		t.Fatalf("missing output column %q", column)
	}
	return table.Cell(table.Rows[row], idx)
}

// =========== Decode Tests ===========

func TestDecodeStudies(t *testing.T) {
	table, err := tabular.Read(strings.NewReader(
		"value_code,modality,Study Description,Chinese Study Description,Contrast,Combine Modality\n" +
			"RAD001, CR ,Chest PA view,胸部X光,N,\n" +
			",CT,Brain CT,,N+Y,RF\n"))
	if err != nil {
		t.Fatalf("read table: %v", err)
	}

	studies, err := DecodeStudies(table)
	if err != nil {
		t.Fatalf("DecodeStudies: %v", err)
	}
	if len(studies) != 2 {
		t.Fatalf("expected 2 studies, got %d", len(studies))
	}

	first := studies[0]
	if first.ValueCode != "RAD001" || first.Modality != "CR" {
		t.Errorf("unexpected first study %+v", first)
	}
	if first.ChineseDescription != "胸部X光" || first.Contrast != "N" {
		t.Errorf("unexpected first study %+v", first)
	}

	second := studies[1]
	if second.ValueCode != "ROW_2" {
		t.Errorf("expected autogenerated ROW_2, got %q", second.ValueCode)
	}
	if second.Contrast != "N+Y" || second.CombineModality != "RF" {
		t.Errorf("unexpected second study %+v", second)
	}
}

func TestDecodeStudies_OptionalColumnsAbsent(t *testing.T) {
	table, err := tabular.Read(strings.NewReader(
		"modality,Study Description\nCR,Chest PA view\n"))
	if err != nil {
		t.Fatalf("read table: %v", err)
	}

	studies, err := DecodeStudies(table)
	if err != nil {
		t.Fatalf("DecodeStudies: %v", err)
	}
	if len(studies) != 1 || studies[0].ValueCode != "ROW_1" {
		t.Fatalf("unexpected studies %+v", studies)
	}
	if studies[0].Contrast != "" || studies[0].ChineseDescription != "" {
		t.Errorf("expected empty optional fields, got %+v", studies[0])
	}
}

func TestDecodeStudies_MissingRequiredColumns(t *testing.T) {
	table, err := tabular.Read(strings.NewReader("value_code,Contrast\nRAD001,N\n"))
	if err != nil {
		t.Fatalf("read table: %v", err)
	}

	_, err = DecodeStudies(table)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"modality", "Study Description"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not name %q", err, want)
		}
	}
}

func TestDecodeStudies_MissingRequiredCell(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{
			name: "empty modality",
			csv:  "modality,Study Description\nCR,Chest PA view\n,Brain CT\n",
			want: "row 2: missing required field modality",
		},
		{
			name: "blank description",
			csv:  "modality,Study Description\nCR,   \n",
			want: "row 1: missing required field Study Description",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := tabular.Read(strings.NewReader(tt.csv))
			if err != nil {
				t.Fatalf("read table: %v", err)
			}
			_, err = DecodeStudies(table)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

// =========== Encode Tests ===========

func TestEncodeResults(t *testing.T) {
	results := []RowResult{
		{
			Study: Study{
				ValueCode:          "RAD001",
				Modality:           "CR",
				Description:        "Chest PA view",
				ChineseDescription: "胸部X光",
				Contrast:           "N",
			},
			PrimaryModality:     "XR",
			ExpandedDescription: "Chest PA view",
			BodyParts:           []string{"Chest"},
			Laterality:          extraction.LateralityNone,
			LOINC: MappingResult{
				Record: &codesystem.Record{
					System: codesystem.SystemLOINC, Code: "36643-5",
					Display: "XR Chest Views", Component: "Chest", Method: "XR",
				},
				Confidence: ConfidenceHigh,
			},
			ICD10PCS: MappingResult{
				Record: &codesystem.Record{
					System: codesystem.SystemICD10PCS, Code: "BW03ZZZ",
					Display: "Plain Radiography Chest",
					Section: "B", BodySystem: "W", RootType: "0",
				},
				Confidence: ConfidenceHigh,
			},
		},
		{
			Study:           Study{ValueCode: "RAD002", Modality: "MR", Description: "MRI Lt knee"},
			PrimaryModality: "MRI",
			BodyParts:       []string{"Knee", "Hand"},
			Laterality:      extraction.LateralityLeft,
			LOINC:           MappingResult{Confidence: ConfidenceNone},
			ICD10PCS:        MappingResult{Confidence: ConfidenceNone},
			Issues: []Issue{
				{Kind: IssueGenericCodeUsed, System: codesystem.SystemLOINC},
			},
		},
	}

	table := EncodeResults(results)

	if len(table.Header) != len(OutputColumns) {
		t.Fatalf("expected %d columns, got %d", len(OutputColumns), len(table.Header))
	}
	for i, name := range OutputColumns {
		if table.Header[i] != name {
			t.Fatalf("column %d: expected %q, got %q", i, name, table.Header[i])
		}
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	if got := cellAt(t, table, 0, "value_code"); got != "RAD001" {
		t.Errorf("value_code = %q", got)
	}
	if got := cellAt(t, table, 0, "LOINC Code"); got != "36643-5" {
		t.Errorf("LOINC Code = %q", got)
	}
	if got := cellAt(t, table, 0, "Mapping Confidence"); got != "High" {
		t.Errorf("Mapping Confidence = %q", got)
	}
	if got := cellAt(t, table, 0, "Has Issues"); got != "No" {
		t.Errorf("Has Issues = %q", got)
	}
	if got := cellAt(t, table, 0, "Laterality"); got != "" {
		t.Errorf("expected empty laterality for None, got %q", got)
	}
	if got := cellAt(t, table, 0, "ICD-10-PCS Body System"); got != "W" {
		t.Errorf("ICD-10-PCS Body System = %q", got)
	}

	if got := cellAt(t, table, 1, "Body Parts"); got != "Knee, Hand" {
		t.Errorf("Body Parts = %q", got)
	}
	if got := cellAt(t, table, 1, "Laterality"); got != "Left" {
		t.Errorf("Laterality = %q", got)
	}
	if got := cellAt(t, table, 1, "LOINC Code"); got != "" {
		t.Errorf("expected empty LOINC code, got %q", got)
	}
	if got := cellAt(t, table, 1, "Mapping Confidence"); got != "None" {
		t.Errorf("Mapping Confidence = %q", got)
	}
	if got := cellAt(t, table, 1, "Has Issues"); got != "Yes" {
		t.Errorf("Has Issues = %q", got)
	}
	if got := cellAt(t, table, 1, "Issues"); got != "LOINC: Using generic code - specific code not found" {
		t.Errorf("Issues = %q", got)
	}
}

func TestEncodeResults_RowWidth(t *testing.T) {
	table := EncodeResults([]RowResult{{Study: Study{ValueCode: "RAD001"}}})
	if len(table.Rows[0]) != len(OutputColumns) {
		t.Errorf("row width %d does not match header width %d",
			len(table.Rows[0]), len(OutputColumns))
	}
}
