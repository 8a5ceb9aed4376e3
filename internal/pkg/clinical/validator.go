package clinical

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ParseError reports text that is not syntactically valid JSON.
type ParseError struct {
	Raw   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model response is not valid JSON: %s", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SchemaError reports syntactically valid JSON that violates the
// ClinicalOutput contract.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("model response failed schema validation: %s", e.Reason)
}

// ValidateClinicalOutput parses sanitized model text and checks it
// against the ClinicalOutput contract. Validation is fail-closed: every
// required field must be present with the declared type, and a single
// malformed array element rejects the whole document. Unknown top-level
// fields are ignored for forward compatibility. No defaults are filled
// in; the caller either gets a complete document or an error.
func ValidateClinicalOutput(sanitized string) (*ClinicalOutput, error) {
	var parsed interface{}
	if err := json.Unmarshal([]byte(sanitized), &parsed); err != nil {
		return nil, &ParseError{Raw: sanitized, Cause: err}
	}

	object, ok := parsed.(map[string]interface{})
	if !ok {
		return nil, &SchemaError{Reason: "top-level value is not an object"}
	}

	output := &ClinicalOutput{}
	var err error

	if output.Subjective, err = requireString(object, "subjective"); err != nil {
		return nil, err
	}
	if output.Objective, err = requireString(object, "objective"); err != nil {
		return nil, err
	}
	if output.Assessment, err = requireString(object, "assessment"); err != nil {
		return nil, err
	}
	if output.Plan, err = requireString(object, "plan"); err != nil {
		return nil, err
	}
	if output.ICD10Codes, err = requireICD10Codes(object, "icd10_codes"); err != nil {
		return nil, err
	}
	if output.MedicationInteractions, err = requireMedicationInteractions(object, "medication_interactions"); err != nil {
		return nil, err
	}
	if output.RedFlags, err = requireStringArray(object, "red_flags"); err != nil {
		return nil, err
	}
	if output.NonVerbalSigns, err = requireStringArray(object, "non_verbal_signs"); err != nil {
		return nil, err
	}
	if output.ClinicalSummary, err = requireString(object, "clinical_summary"); err != nil {
		return nil, err
	}

	return output, nil
}

func requireField(object map[string]interface{}, field string) (interface{}, error) {
	value, present := object[field]
	if !present {
		return nil, &SchemaError{Reason: fmt.Sprintf("missing required field %q", field)}
	}
	return value, nil
}

func requireString(object map[string]interface{}, field string) (string, error) {
	value, err := requireField(object, field)
	if err != nil {
		return "", err
	}
	text, ok := value.(string)
	if !ok {
		return "", &SchemaError{Reason: fmt.Sprintf("field %q must be a string", field)}
	}
	return text, nil
}

func requireArray(object map[string]interface{}, field string) ([]interface{}, error) {
	value, err := requireField(object, field)
	if err != nil {
		return nil, err
	}
	elements, ok := value.([]interface{})
	if !ok {
		return nil, &SchemaError{Reason: fmt.Sprintf("field %q must be an array", field)}
	}
	return elements, nil
}

func requireStringArray(object map[string]interface{}, field string) ([]string, error) {
	elements, err := requireArray(object, field)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(elements))
	for i, element := range elements {
		text, ok := element.(string)
		if !ok {
			return nil, &SchemaError{Reason: fmt.Sprintf("field %q element %d must be a string", field, i)}
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func requireElementString(element map[string]interface{}, parentField string, index int, field string) (string, error) {
	value, present := element[field]
	if !present {
		return "", &SchemaError{Reason: fmt.Sprintf("field %q element %d is missing required field %q", parentField, index, field)}
	}
	text, ok := value.(string)
	if !ok {
		return "", &SchemaError{Reason: fmt.Sprintf("field %q element %d field %q must be a string", parentField, index, field)}
	}
	return text, nil
}

func requireICD10Codes(object map[string]interface{}, field string) ([]ICD10Code, error) {
	elements, err := requireArray(object, field)
	if err != nil {
		return nil, err
	}
	codes := make([]ICD10Code, 0, len(elements))
	for i, raw := range elements {
		element, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &SchemaError{Reason: fmt.Sprintf("field %q element %d must be an object", field, i)}
		}
		var code ICD10Code
		if code.Condition, err = requireElementString(element, field, i, "condition"); err != nil {
			return nil, err
		}
		if code.Code, err = requireElementString(element, field, i, "code"); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func requireMedicationInteractions(object map[string]interface{}, field string) ([]MedicationInteraction, error) {
	elements, err := requireArray(object, field)
	if err != nil {
		return nil, err
	}
	interactions := make([]MedicationInteraction, 0, len(elements))
	for i, raw := range elements {
		element, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &SchemaError{Reason: fmt.Sprintf("field %q element %d must be an object", field, i)}
		}
		var interaction MedicationInteraction
		if interaction.DrugA, err = requireElementString(element, field, i, "drug_a"); err != nil {
			return nil, err
		}
		if interaction.DrugB, err = requireElementString(element, field, i, "drug_b"); err != nil {
			return nil, err
		}
		if interaction.Severity, err = requireElementString(element, field, i, "severity"); err != nil {
			return nil, err
		}
		if interaction.Note, err = requireElementString(element, field, i, "note"); err != nil {
			return nil, err
		}
		interactions = append(interactions, interaction)
	}
	return interactions, nil
}
