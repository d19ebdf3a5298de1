package codesystem

import (
	"fmt"

	"github.com/radcoder/radcoder/internal/domain/extraction"
)

// Database is the immutable catalog for one coding system. Keyed records
// answer exact probes; at most one generic record per modality answers
// the resolver's final fallback.
type Database struct {
	system  System
	records map[Key]Record
	generic map[string]Record
	all     []Record
}

// NewDatabase builds a catalog from source rows. Modalities are
// canonicalized, code formats validated, and duplicate keys rejected, so
// a malformed catalog fails at startup rather than at lookup time.
func NewDatabase(system System, rows []Row) (*Database, error) {
	db := &Database{
		system:  system,
		records: make(map[Key]Record, len(rows)),
		generic: make(map[string]Record),
		all:     make([]Record, 0, len(rows)),
	}
	for i, row := range rows {
		rec, key, generic, err := db.buildRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", system, i+1, err)
		}
		if generic {
			if _, dup := db.generic[key.Modality]; dup {
				return nil, fmt.Errorf("%s row %d: duplicate generic record for modality %s", system, i+1, key.Modality)
			}
			db.generic[key.Modality] = rec
		} else {
			if _, dup := db.records[key]; dup {
				return nil, fmt.Errorf("%s row %d: duplicate key %s/%s/%s/%s",
					system, i+1, key.BodyPart, key.Modality, key.Laterality, key.Contrast)
			}
			db.records[key] = rec
		}
		db.all = append(db.all, rec)
	}
	return db, nil
}

func (db *Database) buildRecord(row Row) (Record, Key, bool, error) {
	if row.Modality == "" {
		return Record{}, Key{}, false, fmt.Errorf("missing modality")
	}
	key := normalizeKey(Key{
		BodyPart:   row.BodyPart,
		Modality:   row.Modality,
		Laterality: row.Laterality,
		Contrast:   row.Contrast,
	})
	if key.Contrast != WithContrast && key.Contrast != WithoutContrast {
		return Record{}, Key{}, false, fmt.Errorf("invalid contrast marker %q", row.Contrast)
	}
	switch key.Laterality {
	case extraction.LateralityLeft, extraction.LateralityRight, extraction.LateralityBilateral, extraction.LateralityNone:
	default:
		return Record{}, Key{}, false, fmt.Errorf("invalid laterality %q", row.Laterality)
	}

	rec := Record{
		System:    db.system,
		Code:      row.Code,
		Display:   row.Display,
		Component: row.Component,
		Method:    row.Method,
	}
	switch db.system {
	case SystemLOINC:
		if err := ValidateLOINCCode(rec.Code); err != nil {
			return Record{}, Key{}, false, err
		}
		if rec.Method == "" {
			rec.Method = MethodDisplay(key.Modality)
		}
	case SystemICD10PCS:
		if err := ValidateICD10PCSCode(rec.Code); err != nil {
			return Record{}, Key{}, false, err
		}
		rec.Section = rec.Code[0:1]
		rec.BodySystem = rec.Code[1:2]
		rec.RootType = rec.Code[2:3]
		if want, known := pcsRootTypes[key.Modality]; known && rec.Code[2] != want {
			return Record{}, Key{}, false, fmt.Errorf(
				"code %s root type %q does not match modality %s (want %q)",
				rec.Code, rec.Code[2], key.Modality, want)
		}
	default:
		return Record{}, Key{}, false, fmt.Errorf("unknown coding system %q", db.system)
	}
	return rec, key, key.BodyPart == "", nil
}

func normalizeKey(k Key) Key {
	k.Modality = extraction.CanonicalModality(k.Modality)
	if k.Laterality == "" {
		k.Laterality = extraction.LateralityNone
	}
	if k.Contrast == "" {
		k.Contrast = WithoutContrast
	}
	return k
}

// System reports which coding system this catalog serves.
func (db *Database) System() System { return db.system }

// Len reports the total number of records, generics included.
func (db *Database) Len() int { return len(db.all) }

// Lookup probes the catalog with an exact key.
func (db *Database) Lookup(k Key) (Record, bool) {
	rec, ok := db.records[normalizeKey(k)]
	return rec, ok
}

// Generic returns the modality-generic record for the given modality
// code, when the catalog carries one.
func (db *Database) Generic(modality string) (Record, bool) {
	rec, ok := db.generic[extraction.CanonicalModality(modality)]
	return rec, ok
}

// Records returns all records in catalog build order.
func (db *Database) Records() []Record {
	out := make([]Record, len(db.all))
	copy(out, db.all)
	return out
}
