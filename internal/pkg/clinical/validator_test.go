package clinical

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() map[string]interface{} {
	return map[string]interface{}{
		"subjective": "Patient reports chest pain since this morning, sharp, central.",
		"objective":  "Clutching chest, appears anxious.",
		"assessment": "Possible acute coronary syndrome.",
		"plan":       "Immediate ECG and troponin levels.",
		"icd10_codes": []interface{}{
			map[string]interface{}{"condition": "Chest pain, unspecified", "code": "R07.9"},
		},
		"medication_interactions": []interface{}{
			map[string]interface{}{"drug_a": "aspirin", "drug_b": "warfarin", "severity": "major", "note": "increased bleeding risk"},
		},
		"red_flags":        []interface{}{"chest pain"},
		"non_verbal_signs": []interface{}{"clutching chest"},
		"clinical_summary": "Acute chest pain with red-flag features.",
	}
}

func marshalDocument(t *testing.T, document map[string]interface{}) string {
	t.Helper()
	data, err := json.Marshal(document)
	require.NoError(t, err)
	return string(data)
}

var requiredTopLevelFields = []string{
	"subjective",
	"objective",
	"assessment",
	"plan",
	"icd10_codes",
	"medication_interactions",
	"red_flags",
	"non_verbal_signs",
	"clinical_summary",
}

func TestValidateClinicalOutput_RoundTrip(t *testing.T) {
	output, err := ValidateClinicalOutput(marshalDocument(t, validDocument()))

	require.NoError(t, err)
	assert.Equal(t, "Patient reports chest pain since this morning, sharp, central.", output.Subjective)
	assert.Equal(t, "Clutching chest, appears anxious.", output.Objective)
	assert.Equal(t, "Possible acute coronary syndrome.", output.Assessment)
	assert.Equal(t, "Immediate ECG and troponin levels.", output.Plan)
	assert.Equal(t, []ICD10Code{{Condition: "Chest pain, unspecified", Code: "R07.9"}}, output.ICD10Codes)
	assert.Equal(t, []MedicationInteraction{{DrugA: "aspirin", DrugB: "warfarin", Severity: "major", Note: "increased bleeding risk"}}, output.MedicationInteractions)
	assert.Equal(t, []string{"chest pain"}, output.RedFlags)
	assert.Equal(t, []string{"clutching chest"}, output.NonVerbalSigns)
	assert.Equal(t, "Acute chest pain with red-flag features.", output.ClinicalSummary)
}

func TestValidateClinicalOutput_SanitizedFenceMatchesUnwrapped(t *testing.T) {
	text := marshalDocument(t, validDocument())
	fenced := "```json\n" + text + "\n```"

	unwrapped, err := ValidateClinicalOutput(SanitizeModelResponse(text))
	require.NoError(t, err)

	fromFence, err := ValidateClinicalOutput(SanitizeModelResponse(fenced))
	require.NoError(t, err)

	assert.Equal(t, unwrapped, fromFence, "fenced and unwrapped content should validate identically")
}

func TestValidateClinicalOutput_EmptyCollectionsAllowed(t *testing.T) {
	document := validDocument()
	document["icd10_codes"] = []interface{}{}
	document["medication_interactions"] = []interface{}{}
	document["red_flags"] = []interface{}{}
	document["non_verbal_signs"] = []interface{}{}
	document["subjective"] = ""

	output, err := ValidateClinicalOutput(marshalDocument(t, document))

	require.NoError(t, err)
	assert.Empty(t, output.ICD10Codes)
	assert.Empty(t, output.MedicationInteractions)
	assert.Empty(t, output.RedFlags)
	assert.Empty(t, output.NonVerbalSigns)
	assert.Equal(t, "", output.Subjective, "empty strings are valid field values")
}

func TestValidateClinicalOutput_MissingRequiredField(t *testing.T) {
	for _, field := range requiredTopLevelFields {
		t.Run(field, func(t *testing.T) {
			document := validDocument()
			delete(document, field)

			output, err := ValidateClinicalOutput(marshalDocument(t, document))

			assert.Nil(t, output)
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr, "missing %q must be a schema error", field)
			assert.Contains(t, schemaErr.Reason, field)
		})
	}
}

func TestValidateClinicalOutput_MistypedField(t *testing.T) {
	t.Run("Numeric Subjective", func(t *testing.T) {
		document := validDocument()
		document["subjective"] = 42

		_, err := ValidateClinicalOutput(marshalDocument(t, document))

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("Red Flags With Non-String Element", func(t *testing.T) {
		document := validDocument()
		document["red_flags"] = []interface{}{"chest pain", 7}

		_, err := ValidateClinicalOutput(marshalDocument(t, document))

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("ICD10 Element Missing Code", func(t *testing.T) {
		document := validDocument()
		document["icd10_codes"] = []interface{}{
			map[string]interface{}{"condition": "Chest pain, unspecified"},
		}

		_, err := ValidateClinicalOutput(marshalDocument(t, document))

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Contains(t, schemaErr.Reason, "code")
	})

	t.Run("ICD10 Element As Bare String", func(t *testing.T) {
		document := validDocument()
		document["icd10_codes"] = []interface{}{"R07.9"}

		_, err := ValidateClinicalOutput(marshalDocument(t, document))

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("Interaction Element Missing Severity", func(t *testing.T) {
		document := validDocument()
		document["medication_interactions"] = []interface{}{
			map[string]interface{}{"drug_a": "aspirin", "drug_b": "warfarin", "note": "bleeding"},
		}

		_, err := ValidateClinicalOutput(marshalDocument(t, document))

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})
}

func TestValidateClinicalOutput_NonObjectTopLevel(t *testing.T) {
	for name, text := range map[string]string{
		"Array":  `["subjective"]`,
		"String": `"subjective"`,
		"Number": `42`,
		"Null":   `null`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateClinicalOutput(text)

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr, "non-object top level must be a schema error")
		})
	}
}

func TestValidateClinicalOutput_InvalidJSON(t *testing.T) {
	for name, text := range map[string]string{
		"Refusal Prose": "I cannot help with that.",
		"Truncated":     `{"subjective": "ok"`,
		"Empty":         "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateClinicalOutput(text)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr, "syntactically invalid text must be a parse error")
			assert.Equal(t, text, parseErr.Raw)
		})
	}
}

func TestValidateClinicalOutput_UnknownFieldsIgnored(t *testing.T) {
	document := validDocument()
	document["confidence"] = 0.97
	document["provider_metadata"] = map[string]interface{}{"model": "some-model"}

	output, err := ValidateClinicalOutput(marshalDocument(t, document))

	require.NoError(t, err)
	assert.Equal(t, []string{"chest pain"}, output.RedFlags, "unknown top-level fields are ignored, not fatal")
}
