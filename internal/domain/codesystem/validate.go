package codesystem

import (
	"fmt"
	"regexp"
)

var (
	loincCodePattern = regexp.MustCompile(`^\d{1,5}-\d$`)
	loincPartPattern = regexp.MustCompile(`^LP\d+-\d$`)
)

// ValidateLOINCCode checks the dash-separated numeric LOINC format.
// LP-prefixed part codes, used for the modality-generic records, are
// accepted as well.
func ValidateLOINCCode(code string) error {
	if code == "" {
		return fmt.Errorf("empty LOINC code")
	}
	if loincCodePattern.MatchString(code) || loincPartPattern.MatchString(code) {
		return nil
	}
	return fmt.Errorf("malformed LOINC code %q", code)
}

// pcsLength is the fixed width of an ICD-10-PCS code: section, body
// system, root type, body part, contrast, qualifier, qualifier.
const pcsLength = 7

// ValidateICD10PCSCode checks the 7-character imaging code format. The
// PCS alphabet is digits plus uppercase letters excluding I and O; the
// section character must be B (imaging).
func ValidateICD10PCSCode(code string) error {
	if len(code) != pcsLength {
		return fmt.Errorf("ICD-10-PCS code %q must be exactly %d characters", code, pcsLength)
	}
	if code[0] != 'B' {
		return fmt.Errorf("ICD-10-PCS code %q must start with imaging section B", code)
	}
	for i := 0; i < len(code); i++ {
		if !isPCSChar(code[i]) {
			return fmt.Errorf("ICD-10-PCS code %q has invalid character %q at position %d", code, code[i], i+1)
		}
	}
	return nil
}

func isPCSChar(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return b != 'I' && b != 'O'
	}
	return false
}
