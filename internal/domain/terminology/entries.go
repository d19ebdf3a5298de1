package terminology

// Builtin returns the default vocabulary: English abbreviations and
// synonyms, Chinese terms, laterality markers and contrast phrases for
// the study catalogs this engine is pointed at. Canonical terms appear
// as their own entries so that expansions are fixed points of the
// normalizer and so the extractor can scan for them directly.
func Builtin() []Entry {
	var entries []Entry
	entries = append(entries, bodyPartEntries...)
	entries = append(entries, chineseBodyPartEntries...)
	entries = append(entries, lateralityEntries...)
	entries = append(entries, contrastEntries...)
	entries = append(entries, genericEntries...)
	return entries
}

// BuiltinBlocks returns the default false-positive blocks.
func BuiltinBlocks() []Block {
	return []Block{
		{Token: "neck", Contexts: []string{"femoral neck"}},
		{Token: "腦", Contexts: []string{"電腦"}},
		{Token: "腎", Contexts: []string{"腎上腺"}},
		{Token: "手", Contexts: []string{"手術"}},
	}
}

var bodyPartEntries = []Entry{
	// Canonical identifiers map to themselves.
	{Token: "chest", Expansion: "Chest", Tag: TagBodyPart},
	{Token: "brain", Expansion: "Brain", Tag: TagBodyPart},
	{Token: "head", Expansion: "Head", Tag: TagBodyPart},
	{Token: "neck", Expansion: "Neck", Tag: TagBodyPart},
	{Token: "abdomen", Expansion: "Abdomen", Tag: TagBodyPart},
	{Token: "pelvis", Expansion: "Pelvis", Tag: TagBodyPart},
	{Token: "spine", Expansion: "Spine", Tag: TagBodyPart},
	{Token: "cervical spine", Expansion: "Cervical spine", Tag: TagBodyPart},
	{Token: "thoracic spine", Expansion: "Thoracic spine", Tag: TagBodyPart},
	{Token: "lumbar spine", Expansion: "Lumbar spine", Tag: TagBodyPart},
	{Token: "lumbosacral spine", Expansion: "Lumbosacral spine", Tag: TagBodyPart},
	{Token: "shoulder", Expansion: "Shoulder", Tag: TagBodyPart},
	{Token: "elbow", Expansion: "Elbow", Tag: TagBodyPart},
	{Token: "wrist", Expansion: "Wrist", Tag: TagBodyPart},
	{Token: "hand", Expansion: "Hand", Tag: TagBodyPart},
	{Token: "hip", Expansion: "Hip", Tag: TagBodyPart},
	{Token: "knee", Expansion: "Knee", Tag: TagBodyPart},
	{Token: "ankle", Expansion: "Ankle", Tag: TagBodyPart},
	{Token: "foot", Expansion: "Foot", Tag: TagBodyPart},
	{Token: "femur", Expansion: "Femur", Tag: TagBodyPart},
	{Token: "thyroid", Expansion: "Thyroid", Tag: TagBodyPart},
	{Token: "liver", Expansion: "Liver", Tag: TagBodyPart},
	{Token: "kidney", Expansion: "Kidney", Tag: TagBodyPart},
	{Token: "ureter", Expansion: "Ureter", Tag: TagBodyPart},
	{Token: "bladder", Expansion: "Bladder", Tag: TagBodyPart},
	{Token: "heart", Expansion: "Heart", Tag: TagBodyPart},
	{Token: "breast", Expansion: "Breast", Tag: TagBodyPart},
	{Token: "coronary artery", Expansion: "Coronary artery", Tag: TagBodyPart},
	{Token: "carotid artery", Expansion: "Carotid artery", Tag: TagBodyPart},
	{Token: "renal artery", Expansion: "Renal artery", Tag: TagBodyPart},
	{Token: "face", Expansion: "Face", Tag: TagBodyPart},
	{Token: "bone", Expansion: "Bone", Tag: TagBodyPart},

	// Plurals.
	{Token: "knees", Expansion: "Knee", Tag: TagBodyPart},
	{Token: "hands", Expansion: "Hand", Tag: TagBodyPart},
	{Token: "shoulders", Expansion: "Shoulder", Tag: TagBodyPart},
	{Token: "elbows", Expansion: "Elbow", Tag: TagBodyPart},
	{Token: "wrists", Expansion: "Wrist", Tag: TagBodyPart},
	{Token: "ankles", Expansion: "Ankle", Tag: TagBodyPart},
	{Token: "feet", Expansion: "Foot", Tag: TagBodyPart},
	{Token: "hips", Expansion: "Hip", Tag: TagBodyPart},
	{Token: "kidneys", Expansion: "Kidney", Tag: TagBodyPart},
	{Token: "breasts", Expansion: "Breast", Tag: TagBodyPart},

	// Abbreviations.
	{Token: "c-spine", Expansion: "Cervical spine", Tag: TagBodyPart},
	{Token: "c spine", Expansion: "Cervical spine", Tag: TagBodyPart},
	{Token: "cspine", Expansion: "Cervical spine", Tag: TagBodyPart},
	{Token: "t-spine", Expansion: "Thoracic spine", Tag: TagBodyPart},
	{Token: "t spine", Expansion: "Thoracic spine", Tag: TagBodyPart},
	{Token: "tspine", Expansion: "Thoracic spine", Tag: TagBodyPart},
	{Token: "l-spine", Expansion: "Lumbar spine", Tag: TagBodyPart},
	{Token: "l spine", Expansion: "Lumbar spine", Tag: TagBodyPart},
	{Token: "lspine", Expansion: "Lumbar spine", Tag: TagBodyPart},
	{Token: "l-s spine", Expansion: "Lumbosacral spine", Tag: TagBodyPart},
	{Token: "ls spine", Expansion: "Lumbosacral spine", Tag: TagBodyPart},
	{Token: "abd", Expansion: "Abdomen", Tag: TagBodyPart},
	{Token: "abdo", Expansion: "Abdomen", Tag: TagBodyPart},
	{Token: "cxr", Expansion: "Chest", Tag: TagBodyPart},
}

var chineseBodyPartEntries = []Entry{
	{Token: "胸部", Expansion: "Chest", Tag: TagBodyPart},
	{Token: "胸腔", Expansion: "Chest", Tag: TagBodyPart},
	{Token: "腦部", Expansion: "Brain", Tag: TagBodyPart},
	{Token: "腦", Expansion: "Brain", Tag: TagBodyPart},
	{Token: "頭部", Expansion: "Head", Tag: TagBodyPart},
	{Token: "頭", Expansion: "Head", Tag: TagBodyPart},
	{Token: "頸部", Expansion: "Neck", Tag: TagBodyPart},
	{Token: "頸椎", Expansion: "Cervical spine", Tag: TagBodyPart},
	{Token: "胸椎", Expansion: "Thoracic spine", Tag: TagBodyPart},
	{Token: "腰椎", Expansion: "Lumbar spine", Tag: TagBodyPart},
	{Token: "腰薦椎", Expansion: "Lumbosacral spine", Tag: TagBodyPart},
	{Token: "脊椎", Expansion: "Spine", Tag: TagBodyPart},
	{Token: "膝", Expansion: "Knee", Tag: TagBodyPart},
	{Token: "膝蓋", Expansion: "Knee", Tag: TagBodyPart},
	{Token: "手", Expansion: "Hand", Tag: TagBodyPart},
	{Token: "手部", Expansion: "Hand", Tag: TagBodyPart},
	{Token: "手肘", Expansion: "Elbow", Tag: TagBodyPart},
	{Token: "肘", Expansion: "Elbow", Tag: TagBodyPart},
	{Token: "手腕", Expansion: "Wrist", Tag: TagBodyPart},
	{Token: "腕", Expansion: "Wrist", Tag: TagBodyPart},
	{Token: "肩", Expansion: "Shoulder", Tag: TagBodyPart},
	{Token: "肩膀", Expansion: "Shoulder", Tag: TagBodyPart},
	{Token: "踝", Expansion: "Ankle", Tag: TagBodyPart},
	{Token: "腳踝", Expansion: "Ankle", Tag: TagBodyPart},
	{Token: "足", Expansion: "Foot", Tag: TagBodyPart},
	{Token: "足部", Expansion: "Foot", Tag: TagBodyPart},
	{Token: "髖", Expansion: "Hip", Tag: TagBodyPart},
	{Token: "髖關節", Expansion: "Hip", Tag: TagBodyPart},
	{Token: "甲狀腺", Expansion: "Thyroid", Tag: TagBodyPart},
	{Token: "腹部", Expansion: "Abdomen", Tag: TagBodyPart},
	{Token: "肝臟", Expansion: "Liver", Tag: TagBodyPart},
	{Token: "肝", Expansion: "Liver", Tag: TagBodyPart},
	{Token: "腎臟", Expansion: "Kidney", Tag: TagBodyPart},
	{Token: "腎", Expansion: "Kidney", Tag: TagBodyPart},
	{Token: "輸尿管", Expansion: "Ureter", Tag: TagBodyPart},
	{Token: "膀胱", Expansion: "Bladder", Tag: TagBodyPart},
	{Token: "骨盆", Expansion: "Pelvis", Tag: TagBodyPart},
	{Token: "骨盆腔", Expansion: "Pelvis", Tag: TagBodyPart},
	{Token: "心臟", Expansion: "Heart", Tag: TagBodyPart},
	{Token: "冠狀動脈", Expansion: "Coronary artery", Tag: TagBodyPart},
	{Token: "頸動脈", Expansion: "Carotid artery", Tag: TagBodyPart},
	{Token: "腎動脈", Expansion: "Renal artery", Tag: TagBodyPart},
	{Token: "乳房", Expansion: "Breast", Tag: TagBodyPart},
	{Token: "骨頭", Expansion: "Bone", Tag: TagBodyPart},
	{Token: "股骨", Expansion: "Femur", Tag: TagBodyPart},
	{Token: "顏面", Expansion: "Face", Tag: TagBodyPart},
}

var lateralityEntries = []Entry{
	{Token: "left", Expansion: WordLeft, Tag: TagLaterality},
	{Token: "lt", Expansion: WordLeft, Tag: TagLaterality},
	{Token: "right", Expansion: WordRight, Tag: TagLaterality},
	{Token: "rt", Expansion: WordRight, Tag: TagLaterality},
	{Token: "bilateral", Expansion: WordBilateral, Tag: TagLaterality},
	{Token: "bilat", Expansion: WordBilateral, Tag: TagLaterality},
	{Token: "bil", Expansion: WordBilateral, Tag: TagLaterality},
	{Token: "both", Expansion: WordBilateral, Tag: TagLaterality},
	{Token: "左", Expansion: WordLeft, Tag: TagLaterality},
	{Token: "左側", Expansion: WordLeft, Tag: TagLaterality},
	{Token: "右", Expansion: WordRight, Tag: TagLaterality},
	{Token: "右側", Expansion: WordRight, Tag: TagLaterality},
	{Token: "雙側", Expansion: WordBilateral, Tag: TagLaterality},
	{Token: "兩側", Expansion: WordBilateral, Tag: TagLaterality},
}

var contrastEntries = []Entry{
	{Token: "with contrast", Expansion: PhraseWithContrast, Tag: TagContrast},
	{Token: "without contrast", Expansion: PhraseWithoutContrast, Tag: TagContrast},
	{Token: "with and without contrast", Expansion: PhraseWithWithoutContrast, Tag: TagContrast},
	{Token: "w/ contrast", Expansion: PhraseWithContrast, Tag: TagContrast},
	{Token: "w/o contrast", Expansion: PhraseWithoutContrast, Tag: TagContrast},
	{Token: "non-contrast", Expansion: PhraseWithoutContrast, Tag: TagContrast},
	{Token: "noncontrast", Expansion: PhraseWithoutContrast, Tag: TagContrast},
	{Token: "contrast-enhanced", Expansion: PhraseWithContrast, Tag: TagContrast},
	{Token: "post contrast", Expansion: PhraseWithContrast, Tag: TagContrast},
	{Token: "c+", Expansion: PhraseWithContrast, Tag: TagContrast},
	{Token: "+c", Expansion: PhraseWithContrast, Tag: TagContrast},
	{Token: "含對比劑", Expansion: PhraseWithContrast, Tag: TagContrast},
	{Token: "含顯影劑", Expansion: PhraseWithContrast, Tag: TagContrast},
	{Token: "含顯影", Expansion: PhraseWithContrast, Tag: TagContrast},
	{Token: "無對比劑", Expansion: PhraseWithoutContrast, Tag: TagContrast},
	{Token: "無顯影劑", Expansion: PhraseWithoutContrast, Tag: TagContrast},
}

var genericEntries = []Entry{
	{Token: "w/", Expansion: "with", Tag: TagGeneric},
	{Token: "w/o", Expansion: "without", Tag: TagGeneric},
	{Token: "x-ray", Expansion: "XR", Tag: TagGeneric},
	{Token: "xray", Expansion: "XR", Tag: TagGeneric},
	{Token: "xr", Expansion: "XR", Tag: TagGeneric},
	{Token: "ultrasound", Expansion: "US", Tag: TagGeneric},
	{Token: "ct", Expansion: "CT", Tag: TagGeneric},
	{Token: "mri", Expansion: "MRI", Tag: TagGeneric},
	{Token: "mr", Expansion: "MRI", Tag: TagGeneric},
	{Token: "電腦斷層", Expansion: "CT", Tag: TagGeneric},
	{Token: "磁振造影", Expansion: "MRI", Tag: TagGeneric},
	{Token: "核磁共振", Expansion: "MRI", Tag: TagGeneric},
	{Token: "X光", Expansion: "XR", Tag: TagGeneric},
	{Token: "超音波", Expansion: "US", Tag: TagGeneric},
}
