// Package clinical defines the structured clinical note contract and the
// pipeline that turns an untrusted model response into a validated
// document. The JSON shape here is the single source of truth: the
// completion prompt restates it literally and the validator enforces it
// field by field.
package clinical

type ICD10Code struct {
	Condition string `json:"condition" bson:"condition"`
	Code      string `json:"code" bson:"code"`
}

type MedicationInteraction struct {
	DrugA    string `json:"drug_a" bson:"drug_a"`
	DrugB    string `json:"drug_b" bson:"drug_b"`
	Severity string `json:"severity" bson:"severity"`
	Note     string `json:"note" bson:"note"`
}

// ClinicalOutput is the SOAP-style extraction result. Every field is
// required; a document missing any of them is rejected as a whole.
type ClinicalOutput struct {
	Subjective             string                  `json:"subjective" bson:"subjective"`
	Objective              string                  `json:"objective" bson:"objective"`
	Assessment             string                  `json:"assessment" bson:"assessment"`
	Plan                   string                  `json:"plan" bson:"plan"`
	ICD10Codes             []ICD10Code             `json:"icd10_codes" bson:"icd10_codes"`
	MedicationInteractions []MedicationInteraction `json:"medication_interactions" bson:"medication_interactions"`
	RedFlags               []string                `json:"red_flags" bson:"red_flags"`
	NonVerbalSigns         []string                `json:"non_verbal_signs" bson:"non_verbal_signs"`
	ClinicalSummary        string                  `json:"clinical_summary" bson:"clinical_summary"`
}
