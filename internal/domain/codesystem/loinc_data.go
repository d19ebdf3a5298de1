package codesystem

import (
	"github.com/radcoder/radcoder/internal/domain/extraction"
)

// BuiltinLOINC returns the builtin LOINC catalog for common radiology
// studies. Rows with an empty Laterality are non-sided; rows with an
// empty Contrast are without-contrast records. The trailing rows with an
// empty BodyPart are the per-modality generic part codes.
func BuiltinLOINC() []Row {
	return []Row{
		// Plain radiography
		{BodyPart: "Chest", Modality: "XR", Code: "36643-5", Display: "XR Chest Views", Component: "Chest", Method: "XR"},
		{BodyPart: "Cervical spine", Modality: "XR", Code: "36713-6", Display: "XR Cervical spine", Component: "Cervical spine", Method: "XR"},
		{BodyPart: "Thoracic spine", Modality: "XR", Code: "36715-1", Display: "XR Thoracic spine", Component: "Thoracic spine", Method: "XR"},
		{BodyPart: "Lumbar spine", Modality: "XR", Code: "36714-4", Display: "XR Lumbar spine", Component: "Lumbar spine", Method: "XR"},
		{BodyPart: "Pelvis", Modality: "XR", Code: "37748-0", Display: "XR Pelvis", Component: "Pelvis", Method: "XR"},
		{BodyPart: "Hand", Modality: "XR", Laterality: extraction.LateralityRight, Code: "37362-0", Display: "XR Hand - right", Component: "Hand - right", Method: "XR"},
		{BodyPart: "Hand", Modality: "XR", Laterality: extraction.LateralityLeft, Code: "37361-2", Display: "XR Hand - left", Component: "Hand - left", Method: "XR"},
		{BodyPart: "Knee", Modality: "XR", Laterality: extraction.LateralityRight, Code: "37628-4", Display: "XR Knee - right", Component: "Knee - right", Method: "XR"},
		{BodyPart: "Knee", Modality: "XR", Laterality: extraction.LateralityLeft, Code: "37627-6", Display: "XR Knee - left", Component: "Knee - left", Method: "XR"},
		{BodyPart: "Knee", Modality: "XR", Laterality: extraction.LateralityBilateral, Code: "69161-8", Display: "XR Knee - bilateral", Component: "Knee - bilateral", Method: "XR"},
		{BodyPart: "Shoulder", Modality: "XR", Laterality: extraction.LateralityRight, Code: "37016-2", Display: "XR Shoulder - right", Component: "Shoulder - right", Method: "XR"},
		{BodyPart: "Shoulder", Modality: "XR", Laterality: extraction.LateralityLeft, Code: "37015-4", Display: "XR Shoulder - left", Component: "Shoulder - left", Method: "XR"},
		{BodyPart: "Elbow", Modality: "XR", Laterality: extraction.LateralityRight, Code: "37256-4", Display: "XR Elbow - right", Component: "Elbow - right", Method: "XR"},
		{BodyPart: "Elbow", Modality: "XR", Laterality: extraction.LateralityLeft, Code: "37255-6", Display: "XR Elbow - left", Component: "Elbow - left", Method: "XR"},
		{BodyPart: "Wrist", Modality: "XR", Laterality: extraction.LateralityRight, Code: "37022-0", Display: "XR Wrist - right", Component: "Wrist - right", Method: "XR"},
		{BodyPart: "Wrist", Modality: "XR", Laterality: extraction.LateralityLeft, Code: "37021-2", Display: "XR Wrist - left", Component: "Wrist - left", Method: "XR"},
		{BodyPart: "Ankle", Modality: "XR", Laterality: extraction.LateralityRight, Code: "37048-2", Display: "XR Ankle - right", Component: "Ankle - right", Method: "XR"},
		{BodyPart: "Ankle", Modality: "XR", Laterality: extraction.LateralityLeft, Code: "37047-4", Display: "XR Ankle - left", Component: "Ankle - left", Method: "XR"},
		{BodyPart: "Foot", Modality: "XR", Laterality: extraction.LateralityRight, Code: "37542-4", Display: "XR Foot - right", Component: "Foot - right", Method: "XR"},
		{BodyPart: "Foot", Modality: "XR", Laterality: extraction.LateralityLeft, Code: "37541-6", Display: "XR Foot - left", Component: "Foot - left", Method: "XR"},

		// Computed tomography
		{BodyPart: "Chest", Modality: "CT", Code: "24627-2", Display: "CT Chest W/O contrast", Component: "Chest", Method: "CT"},
		{BodyPart: "Chest", Modality: "CT", Contrast: WithContrast, Code: "24626-4", Display: "CT Chest W contrast IV", Component: "Chest", Method: "CT"},
		{BodyPart: "Abdomen", Modality: "CT", Code: "24640-5", Display: "CT Abdomen W/O contrast", Component: "Abdomen", Method: "CT"},
		{BodyPart: "Abdomen", Modality: "CT", Contrast: WithContrast, Code: "79101-4", Display: "CT Abdomen and Pelvis W contrast IV", Component: "Abdomen and Pelvis", Method: "CT"},
		{BodyPart: "Brain", Modality: "CT", Code: "24558-9", Display: "CT Head W/O contrast", Component: "Head", Method: "CT"},
		{BodyPart: "Brain", Modality: "CT", Contrast: WithContrast, Code: "24557-1", Display: "CT Head W contrast IV", Component: "Head", Method: "CT"},
		{BodyPart: "Head", Modality: "CT", Code: "24558-9", Display: "CT Head W/O contrast", Component: "Head", Method: "CT"},
		{BodyPart: "Head", Modality: "CT", Contrast: WithContrast, Code: "24557-1", Display: "CT Head W contrast IV", Component: "Head", Method: "CT"},
		{BodyPart: "Neck", Modality: "CT", Code: "24551-4", Display: "CT Neck W/O contrast", Component: "Neck", Method: "CT"},
		{BodyPart: "Cervical spine", Modality: "CT", Code: "24800-5", Display: "CT Cervical spine W/O contrast", Component: "Cervical spine", Method: "CT"},
		{BodyPart: "Lumbar spine", Modality: "CT", Code: "24802-1", Display: "CT Lumbar spine W/O contrast", Component: "Lumbar spine", Method: "CT"},
		{BodyPart: "Pelvis", Modality: "CT", Code: "24907-8", Display: "CT Pelvis W/O contrast", Component: "Pelvis", Method: "CT"},

		// Magnetic resonance
		{BodyPart: "Brain", Modality: "MRI", Code: "24556-3", Display: "MRI Brain W/O contrast", Component: "Brain", Method: "MRI"},
		{BodyPart: "Brain", Modality: "MRI", Contrast: WithContrast, Code: "24555-5", Display: "MRI Brain W contrast IV", Component: "Brain", Method: "MRI"},
		{BodyPart: "Cervical spine", Modality: "MRI", Code: "24852-6", Display: "MRI Cervical spine W/O contrast", Component: "Cervical spine", Method: "MRI"},
		{BodyPart: "Thoracic spine", Modality: "MRI", Code: "24856-7", Display: "MRI Thoracic spine W/O contrast", Component: "Thoracic spine", Method: "MRI"},
		{BodyPart: "Lumbar spine", Modality: "MRI", Code: "24860-9", Display: "MRI Lumbar spine W/O contrast", Component: "Lumbar spine", Method: "MRI"},
		{BodyPart: "Knee", Modality: "MRI", Laterality: extraction.LateralityRight, Code: "24876-5", Display: "MRI Knee - right W/O contrast", Component: "Knee - right", Method: "MRI"},
		{BodyPart: "Knee", Modality: "MRI", Laterality: extraction.LateralityLeft, Code: "24875-7", Display: "MRI Knee - left W/O contrast", Component: "Knee - left", Method: "MRI"},
		{BodyPart: "Pelvis", Modality: "MRI", Code: "24926-8", Display: "MRI Pelvis W/O contrast", Component: "Pelvis", Method: "MRI"},

		// Ultrasound
		{BodyPart: "Abdomen", Modality: "US", Code: "30704-1", Display: "US Abdomen", Component: "Abdomen", Method: "US"},
		{BodyPart: "Liver", Modality: "US", Code: "30705-8", Display: "US Liver", Component: "Liver", Method: "US"},
		{BodyPart: "Kidney", Modality: "US", Code: "24642-1", Display: "US Kidney", Component: "Kidney", Method: "US"},
		{BodyPart: "Thyroid", Modality: "US", Code: "30734-8", Display: "US Thyroid", Component: "Thyroid", Method: "US"},

		// Bone density
		{BodyPart: "Spine", Modality: "BMD", Code: "38262-7", Display: "DXA Bone density in Spine", Component: "Spine", Method: "DXA"},
		{BodyPart: "Hip", Modality: "BMD", Code: "38263-5", Display: "DXA Bone density in Hip", Component: "Hip", Method: "DXA"},

		// Modality-generic part codes
		{Modality: "XR", Code: "LP29684-5", Display: "Generic XR study", Method: "XR"},
		{Modality: "CT", Code: "LP29708-2", Display: "Generic CT study", Method: "CT"},
		{Modality: "MRI", Code: "LP29709-0", Display: "Generic MRI study", Method: "MRI"},
		{Modality: "US", Code: "LP29262-0", Display: "Generic US study", Method: "US"},
		{Modality: "RF", Code: "LP29685-2", Display: "Generic Fluoro study", Method: "Fluoro"},
		{Modality: "XA", Code: "LP29263-8", Display: "Generic Angio study", Method: "Angio"},
		{Modality: "BMD", Code: "LP29697-7", Display: "Generic DXA study", Method: "DXA"},
	}
}
