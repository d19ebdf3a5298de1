package codesystem

import (
	"github.com/radcoder/radcoder/internal/domain/extraction"
)

// BuiltinICD10PCS returns the builtin procedure code catalog. There are
// no modality-generic rows: a study that misses every keyed record has
// no procedure code, which is the expected outcome for bone density and
// other modalities outside the imaging root types.
func BuiltinICD10PCS() []Row {
	return []Row{
		// Central nervous system (B0)
		{BodyPart: "Brain", Modality: "CT", Code: "B020ZZZ", Display: "CT Brain without contrast"},
		{BodyPart: "Brain", Modality: "CT", Contrast: WithContrast, Code: "B0200ZZ", Display: "CT Brain with contrast, unenhanced and enhanced"},
		{BodyPart: "Brain", Modality: "MRI", Code: "B030ZZZ", Display: "MRI Brain without contrast"},
		{BodyPart: "Brain", Modality: "MRI", Contrast: WithContrast, Code: "B0300ZZ", Display: "MRI Brain with contrast, unenhanced and enhanced"},
		{BodyPart: "Head", Modality: "CT", Code: "B020ZZZ", Display: "CT Brain without contrast"},
		{BodyPart: "Head", Modality: "CT", Contrast: WithContrast, Code: "B0200ZZ", Display: "CT Brain with contrast, unenhanced and enhanced"},
		{BodyPart: "Head", Modality: "MRI", Code: "B030ZZZ", Display: "MRI Brain without contrast"},
		{BodyPart: "Head", Modality: "MRI", Contrast: WithContrast, Code: "B0300ZZ", Display: "MRI Brain with contrast, unenhanced and enhanced"},

		// Heart (B2)
		{BodyPart: "Heart", Modality: "XA", Contrast: WithContrast, Code: "B2161ZZ", Display: "Fluoroscopy Heart with contrast"},
		{BodyPart: "Coronary artery", Modality: "XA", Contrast: WithContrast, Code: "B2101ZZ", Display: "Fluoroscopy Coronary Arteries with contrast"},

		// Upper bones (BP)
		{BodyPart: "Hand", Modality: "XR", Laterality: extraction.LateralityRight, Code: "BP0JZZZ", Display: "Plain Radiography Right Hand"},
		{BodyPart: "Hand", Modality: "XR", Laterality: extraction.LateralityLeft, Code: "BP0KZZZ", Display: "Plain Radiography Left Hand"},

		// Lower bones (BQ)
		{BodyPart: "Knee", Modality: "XR", Laterality: extraction.LateralityRight, Code: "BQ0CZZZ", Display: "Plain Radiography Right Knee"},
		{BodyPart: "Knee", Modality: "XR", Laterality: extraction.LateralityLeft, Code: "BQ0DZZZ", Display: "Plain Radiography Left Knee"},
		{BodyPart: "Knee", Modality: "XR", Laterality: extraction.LateralityBilateral, Code: "BQ09ZZZ", Display: "Plain Radiography Bilateral Knees"},
		{BodyPart: "Knee", Modality: "MRI", Laterality: extraction.LateralityRight, Code: "BQ3CZZZ", Display: "MRI Right Knee without contrast"},
		{BodyPart: "Knee", Modality: "MRI", Laterality: extraction.LateralityLeft, Code: "BQ3DZZZ", Display: "MRI Left Knee without contrast"},

		// Axial skeleton (BR)
		{BodyPart: "Cervical spine", Modality: "XR", Code: "BR00ZZZ", Display: "Plain Radiography Cervical Spine"},
		{BodyPart: "Cervical spine", Modality: "CT", Code: "BR20ZZZ", Display: "CT Cervical Spine without contrast"},
		{BodyPart: "Cervical spine", Modality: "MRI", Code: "BR30ZZZ", Display: "MRI Cervical Spine without contrast"},
		{BodyPart: "Thoracic spine", Modality: "XR", Code: "BR07ZZZ", Display: "Plain Radiography Thoracic Spine"},
		{BodyPart: "Thoracic spine", Modality: "CT", Code: "BR27ZZZ", Display: "CT Thoracic Spine without contrast"},
		{BodyPart: "Thoracic spine", Modality: "MRI", Code: "BR37ZZZ", Display: "MRI Thoracic Spine without contrast"},
		{BodyPart: "Lumbar spine", Modality: "XR", Code: "BR03ZZZ", Display: "Plain Radiography Lumbar Spine"},
		{BodyPart: "Lumbar spine", Modality: "CT", Code: "BR23ZZZ", Display: "CT Lumbar Spine without contrast"},
		{BodyPart: "Lumbar spine", Modality: "MRI", Code: "BR33ZZZ", Display: "MRI Lumbar Spine without contrast"},

		// Hepatobiliary system (BF)
		{BodyPart: "Liver", Modality: "US", Code: "BF45ZZZ", Display: "Ultrasonography Liver"},

		// Urinary system (BT)
		{BodyPart: "Kidney", Modality: "US", Code: "BT45ZZZ", Display: "Ultrasonography Kidney"},
		{BodyPart: "Kidney", Modality: "US", Laterality: extraction.LateralityBilateral, Code: "BT45ZZZ", Display: "Ultrasonography Bilateral Kidneys"},
		{BodyPart: "Kidney", Modality: "CT", Code: "BT25ZZZ", Display: "CT Kidney without contrast"},
		{BodyPart: "Ureter", Modality: "CT", Code: "BT26ZZZ", Display: "CT Ureter without contrast"},
		{BodyPart: "Bladder", Modality: "CT", Code: "BT27ZZZ", Display: "CT Bladder without contrast"},

		// Anatomical regions (BW)
		{BodyPart: "Chest", Modality: "XR", Code: "BW03ZZZ", Display: "Plain Radiography Chest"},
		{BodyPart: "Chest", Modality: "CT", Code: "BW24ZZZ", Display: "CT Chest without contrast"},
		{BodyPart: "Chest", Modality: "CT", Contrast: WithContrast, Code: "BW240ZZ", Display: "CT Chest with contrast"},
		{BodyPart: "Abdomen", Modality: "CT", Code: "BW20ZZZ", Display: "CT Abdomen without contrast"},
		{BodyPart: "Abdomen", Modality: "CT", Contrast: WithContrast, Code: "BW200ZZ", Display: "CT Abdomen with contrast"},
		{BodyPart: "Abdomen", Modality: "US", Code: "BW40ZZZ", Display: "Ultrasonography Abdomen"},
		{BodyPart: "Pelvis", Modality: "XR", Code: "BW0HZZZ", Display: "Plain Radiography Pelvis"},
		{BodyPart: "Pelvis", Modality: "CT", Code: "BW2GZZZ", Display: "CT Pelvis without contrast"},
	}
}
