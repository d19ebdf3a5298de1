package terminology

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOverrideFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terminology.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing override file: %v", err)
	}
	return path
}

func TestLoadTable_BuiltinWhenPathEmpty(t *testing.T) {
	table, err := LoadTable("")
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if _, ok := table.Lookup("c-spine"); !ok {
		t.Error("builtin vocabulary missing c-spine")
	}
}

func TestLoadTable_MergesOverrides(t *testing.T) {
	path := writeOverrideFile(t, `
entries:
  - token: "kub"
    expansion: "Abdomen"
    tag: body_part
blocks:
  - token: "kub"
    contexts: ["post-op kub"]
`)
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	// New token added.
	e, ok := table.Lookup("KUB")
	if !ok || e.Expansion != "Abdomen" {
		t.Errorf("expected kub -> Abdomen, got %+v ok=%v", e, ok)
	}
	// Builtin token still present.
	if _, ok := table.Lookup("c-spine"); !ok {
		t.Error("builtin c-spine lost after merge")
	}
	// Override token matches in normal context.
	if got := table.FindAll("kub study", TagBodyPart); len(got) != 1 {
		t.Errorf("expected kub match, got %+v", got)
	}
	// Override block applies.
	if got := table.FindAll("post-op kub", TagBodyPart); len(got) != 0 {
		t.Errorf("expected blocked match, got %+v", got)
	}
}

func TestLoadTable_OverrideReplacesSameToken(t *testing.T) {
	path := writeOverrideFile(t, `
entries:
  - token: "cxr"
    expansion: "Chest"
    tag: body_part
  - token: "abd"
    expansion: "Pelvis"
    tag: body_part
`)
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	e, _ := table.Lookup("abd")
	if e.Expansion != "Pelvis" {
		t.Errorf("expected override to win, got %s", e.Expansion)
	}
}

func TestLoadTable_ReplaceMode(t *testing.T) {
	path := writeOverrideFile(t, `
replace: true
entries:
  - token: "chest"
    expansion: "Chest"
    tag: body_part
`)
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 entry in replace mode, got %d", table.Len())
	}
	if _, ok := table.Lookup("c-spine"); ok {
		t.Error("builtin entry survived replace mode")
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	if _, err := LoadTable("/no/such/file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadOverrides_DefaultsTagToGeneric(t *testing.T) {
	path := writeOverrideFile(t, `
entries:
  - token: "w/u"
    expansion: "workup"
`)
	ov, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if ov.Entries[0].Tag != TagGeneric {
		t.Errorf("expected generic tag default, got %s", ov.Entries[0].Tag)
	}
}
