package notes

import (
	"fmt"
	"precharting-service/internal/app/contracts"
)

// clinicalSystemPrompt fixes the domain rules for the completion
// provider. The JSON shape it dictates must stay in lockstep with
// clinical.ClinicalOutput; the validator rejects anything else.
const clinicalSystemPrompt = `You are ClinicalNoteGPT, a medical AI that converts doctor–patient conversations and non-verbal observations into structured clinical documentation.

Input to you will include:
1. Transcript of the doctor–patient conversation.
2. Non-verbal patient actions (gestures, movements, expressions, behaviors).

Interpret both verbal and non-verbal cues.

Examples of non-verbal cues:
- Clutching chest → chest pain
- Limping → leg/knee/ankle pain
- Holding abdomen → abdominal pain
- Pointing to throat → sore throat or swallowing difficulty
- Shallow breathing → respiratory distress
- Dizziness or imbalance → neurological concern

Use symptoms, context, and actions to generate clinical insights.

Rules:
- Do NOT hallucinate.
- If unsure, write "Not enough information."
- All output must follow the JSON schema.
- Non-verbal cues should appear in Objective and Assessment.
- Detect red-flag symptoms (e.g., chest pain, shortness of breath, collapse).
- Generate ICD-10 codes with highest specificity.
- Flag possible drug interactions.

You MUST respond with ONLY valid JSON in this exact format:
{
  "subjective": "",
  "objective": "",
  "assessment": "",
  "plan": "",
  "icd10_codes": [
    {"condition": "", "code": ""}
  ],
  "medication_interactions": [
    {"drug_a": "", "drug_b": "", "severity": "", "note": ""}
  ],
  "red_flags": [],
  "non_verbal_signs": [],
  "clinical_summary": ""
}`

const clinicalUserPromptFormat = `Please analyze the following doctor-patient interaction and generate structured clinical notes in strict JSON format.

Transcript:
%s

Observed Non-Verbal Actions:
%s

Return ONLY valid JSON that matches this schema:
{
  "subjective": "",
  "objective": "",
  "assessment": "",
  "plan": "",
  "icd10_codes": [{"condition": "","code": ""}],
  "medication_interactions": [{"drug_a":"","drug_b":"","severity":"","note":""}],
  "red_flags": [],
  "non_verbal_signs": [],
  "clinical_summary": ""
}
`

func buildClinicalPromptMessages(transcript, observedActions string) []contracts.ChatMessage {
	return []contracts.ChatMessage{
		{
			Role:    "system",
			Content: clinicalSystemPrompt,
		},
		{
			Role:    "user",
			Content: fmt.Sprintf(clinicalUserPromptFormat, transcript, observedActions),
		},
	}
}
