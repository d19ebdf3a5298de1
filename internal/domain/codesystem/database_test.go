package codesystem

import (
	"strings"
	"testing"

	"github.com/radcoder/radcoder/internal/domain/extraction"
)

func mustDatabase(t *testing.T, system System, rows []Row) *Database {
	t.Helper()
	db, err := NewDatabase(system, rows)
	if err != nil {
		t.Fatalf("NewDatabase(%s): %v", system, err)
	}
	return db
}

// =========== Build Tests ===========

func TestNewDatabase_BuiltinLOINC(t *testing.T) {
	rows := BuiltinLOINC()
	db := mustDatabase(t, SystemLOINC, rows)

	if db.System() != SystemLOINC {
		t.Errorf("expected system LOINC, got %s", db.System())
	}
	if db.Len() != len(rows) {
		t.Errorf("expected %d records, got %d", len(rows), db.Len())
	}

	rec, ok := db.Lookup(Key{BodyPart: "Chest", Modality: "XR"})
	if !ok {
		t.Fatal("expected Chest XR record")
	}
	if rec.Code != "36643-5" {
		t.Errorf("expected code 36643-5, got %s", rec.Code)
	}
	if rec.Method != "XR" {
		t.Errorf("expected method XR, got %s", rec.Method)
	}
}

func TestNewDatabase_BuiltinICD10PCS(t *testing.T) {
	db := mustDatabase(t, SystemICD10PCS, BuiltinICD10PCS())

	rec, ok := db.Lookup(Key{BodyPart: "Chest", Modality: "XR"})
	if !ok {
		t.Fatal("expected Chest XR record")
	}
	if rec.Code != "BW03ZZZ" {
		t.Errorf("expected code BW03ZZZ, got %s", rec.Code)
	}
	if rec.Section != "B" || rec.BodySystem != "W" || rec.RootType != "0" {
		t.Errorf("expected section/body system/root type B/W/0, got %s/%s/%s",
			rec.Section, rec.BodySystem, rec.RootType)
	}

	// Procedure catalogs carry no generic fallback rows.
	for _, m := range []string{"XR", "CT", "MRI", "US", "BMD"} {
		if _, ok := db.Generic(m); ok {
			t.Errorf("expected no generic record for %s", m)
		}
	}
}

func TestNewDatabase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		system  System
		rows    []Row
		wantErr string
	}{
		{
			name:    "missing modality",
			system:  SystemLOINC,
			rows:    []Row{{BodyPart: "Chest", Code: "36643-5"}},
			wantErr: "missing modality",
		},
		{
			name:    "invalid contrast marker",
			system:  SystemLOINC,
			rows:    []Row{{BodyPart: "Chest", Modality: "XR", Contrast: "X", Code: "36643-5"}},
			wantErr: "invalid contrast marker",
		},
		{
			name:    "invalid laterality",
			system:  SystemLOINC,
			rows:    []Row{{BodyPart: "Hand", Modality: "XR", Laterality: "Sinister", Code: "37361-2"}},
			wantErr: "invalid laterality",
		},
		{
			name:    "malformed LOINC code",
			system:  SystemLOINC,
			rows:    []Row{{BodyPart: "Chest", Modality: "XR", Code: "36643"}},
			wantErr: "malformed LOINC code",
		},
		{
			name:    "short procedure code",
			system:  SystemICD10PCS,
			rows:    []Row{{BodyPart: "Chest", Modality: "XR", Code: "BW03ZZ"}},
			wantErr: "exactly 7 characters",
		},
		{
			name:    "wrong section",
			system:  SystemICD10PCS,
			rows:    []Row{{BodyPart: "Chest", Modality: "XR", Code: "XW03ZZZ"}},
			wantErr: "imaging section B",
		},
		{
			name:    "excluded alphabet character",
			system:  SystemICD10PCS,
			rows:    []Row{{BodyPart: "Chest", Modality: "XR", Code: "BW0IZZZ"}},
			wantErr: "invalid character",
		},
		{
			name:    "root type does not match modality",
			system:  SystemICD10PCS,
			rows:    []Row{{BodyPart: "Chest", Modality: "XR", Code: "BW23ZZZ"}},
			wantErr: "does not match modality",
		},
		{
			name:   "duplicate key",
			system: SystemLOINC,
			rows: []Row{
				{BodyPart: "Chest", Modality: "XR", Code: "36643-5"},
				{BodyPart: "Chest", Modality: "DX", Code: "36643-5"},
			},
			wantErr: "duplicate key",
		},
		{
			name:   "duplicate generic",
			system: SystemLOINC,
			rows: []Row{
				{Modality: "XR", Code: "LP29684-5"},
				{Modality: "CR", Code: "LP29684-5"},
			},
			wantErr: "duplicate generic",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDatabase(tt.system, tt.rows)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err)
			}
		})
	}
}

// =========== Lookup Tests ===========

func TestLookup_CanonicalizesModality(t *testing.T) {
	db := mustDatabase(t, SystemLOINC, BuiltinLOINC())

	tests := []struct {
		name string
		key  Key
		code string
	}{
		{"CR alias", Key{BodyPart: "Chest", Modality: "CR"}, "36643-5"},
		{"DX alias", Key{BodyPart: "Chest", Modality: "DX"}, "36643-5"},
		{"MR alias", Key{BodyPart: "Brain", Modality: "MR"}, "24556-3"},
		{"lowercase", Key{BodyPart: "Chest", Modality: "xr"}, "36643-5"},
		{"DXA alias", Key{BodyPart: "Spine", Modality: "DXA"}, "38262-7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := db.Lookup(tt.key)
			if !ok {
				t.Fatalf("Lookup(%+v): no record", tt.key)
			}
			if rec.Code != tt.code {
				t.Errorf("expected %s, got %s", tt.code, rec.Code)
			}
		})
	}
}

func TestLookup_DefaultsLateralityAndContrast(t *testing.T) {
	db := mustDatabase(t, SystemLOINC, BuiltinLOINC())

	implicit, ok := db.Lookup(Key{BodyPart: "Chest", Modality: "CT"})
	if !ok {
		t.Fatal("expected Chest CT record via defaults")
	}
	explicit, ok := db.Lookup(Key{
		BodyPart:   "Chest",
		Modality:   "CT",
		Laterality: extraction.LateralityNone,
		Contrast:   WithoutContrast,
	})
	if !ok {
		t.Fatal("expected Chest CT record via explicit key")
	}
	if implicit.Code != explicit.Code {
		t.Errorf("default and explicit keys disagree: %s vs %s", implicit.Code, explicit.Code)
	}
}

func TestLookup_ContrastDimension(t *testing.T) {
	db := mustDatabase(t, SystemLOINC, BuiltinLOINC())

	without, ok := db.Lookup(Key{BodyPart: "Chest", Modality: "CT", Contrast: WithoutContrast})
	if !ok || without.Code != "24627-2" {
		t.Errorf("expected 24627-2 without contrast, got %+v (found %v)", without, ok)
	}
	with, ok := db.Lookup(Key{BodyPart: "Chest", Modality: "CT", Contrast: WithContrast})
	if !ok || with.Code != "24626-4" {
		t.Errorf("expected 24626-4 with contrast, got %+v (found %v)", with, ok)
	}
}

func TestLookup_LateralityDimension(t *testing.T) {
	db := mustDatabase(t, SystemLOINC, BuiltinLOINC())

	tests := []struct {
		laterality extraction.Laterality
		code       string
	}{
		{extraction.LateralityRight, "37628-4"},
		{extraction.LateralityLeft, "37627-6"},
		{extraction.LateralityBilateral, "69161-8"},
	}
	for _, tt := range tests {
		rec, ok := db.Lookup(Key{BodyPart: "Knee", Modality: "XR", Laterality: tt.laterality})
		if !ok {
			t.Errorf("Knee XR %s: no record", tt.laterality)
			continue
		}
		if rec.Code != tt.code {
			t.Errorf("Knee XR %s: expected %s, got %s", tt.laterality, tt.code, rec.Code)
		}
	}

	if _, ok := db.Lookup(Key{BodyPart: "Knee", Modality: "XR"}); ok {
		t.Error("expected no non-sided Knee XR record")
	}
}

func TestGeneric(t *testing.T) {
	db := mustDatabase(t, SystemLOINC, BuiltinLOINC())

	tests := []struct {
		modality string
		code     string
	}{
		{"XR", "LP29684-5"},
		{"CR", "LP29684-5"},
		{"CT", "LP29708-2"},
		{"MR", "LP29709-0"},
		{"US", "LP29262-0"},
		{"RF", "LP29685-2"},
		{"XA", "LP29263-8"},
		{"DXA", "LP29697-7"},
	}
	for _, tt := range tests {
		rec, ok := db.Generic(tt.modality)
		if !ok {
			t.Errorf("Generic(%s): no record", tt.modality)
			continue
		}
		if rec.Code != tt.code {
			t.Errorf("Generic(%s): expected %s, got %s", tt.modality, tt.code, rec.Code)
		}
	}

	if _, ok := db.Generic("OT"); ok {
		t.Error("expected no generic record for OT")
	}
}

// =========== Catalog Format Properties ===========

func TestBuiltinLOINC_RecordFormats(t *testing.T) {
	db := mustDatabase(t, SystemLOINC, BuiltinLOINC())
	for _, rec := range db.Records() {
		if err := ValidateLOINCCode(rec.Code); err != nil {
			t.Errorf("record %s: %v", rec.Code, err)
		}
		if rec.Display == "" {
			t.Errorf("record %s: empty display", rec.Code)
		}
		if rec.Method == "" {
			t.Errorf("record %s: empty method", rec.Code)
		}
		if rec.System != SystemLOINC {
			t.Errorf("record %s: wrong system %s", rec.Code, rec.System)
		}
	}
}

func TestBuiltinICD10PCS_RecordFormats(t *testing.T) {
	db := mustDatabase(t, SystemICD10PCS, BuiltinICD10PCS())
	for _, rec := range db.Records() {
		if err := ValidateICD10PCSCode(rec.Code); err != nil {
			t.Errorf("record %s: %v", rec.Code, err)
		}
		if rec.Display == "" {
			t.Errorf("record %s: empty display", rec.Code)
		}
		if rec.Section != rec.Code[0:1] || rec.BodySystem != rec.Code[1:2] || rec.RootType != rec.Code[2:3] {
			t.Errorf("record %s: derived characters %s/%s/%s do not match code",
				rec.Code, rec.Section, rec.BodySystem, rec.RootType)
		}
	}
}

// =========== Code Validation Tests ===========

func TestValidateLOINCCode(t *testing.T) {
	valid := []string{"36643-5", "718-7", "8310-5", "LP29684-5"}
	for _, code := range valid {
		if err := ValidateLOINCCode(code); err != nil {
			t.Errorf("ValidateLOINCCode(%q): unexpected error %v", code, err)
		}
	}

	invalid := []string{"", "36643", "36643-55", "123456-7", "LP-5", "36643_5"}
	for _, code := range invalid {
		if err := ValidateLOINCCode(code); err == nil {
			t.Errorf("ValidateLOINCCode(%q): expected error", code)
		}
	}
}

func TestValidateICD10PCSCode(t *testing.T) {
	valid := []string{"BW03ZZZ", "B2101ZZ", "BT45ZZZ", "BQ09ZZZ"}
	for _, code := range valid {
		if err := ValidateICD10PCSCode(code); err != nil {
			t.Errorf("ValidateICD10PCSCode(%q): unexpected error %v", code, err)
		}
	}

	invalid := []string{"", "BW03ZZ", "BW03ZZZZ", "CW03ZZZ", "BW0IZZZ", "BW0OZZZ", "bw03zzz"}
	for _, code := range invalid {
		if err := ValidateICD10PCSCode(code); err == nil {
			t.Errorf("ValidateICD10PCSCode(%q): expected error", code)
		}
	}
}
