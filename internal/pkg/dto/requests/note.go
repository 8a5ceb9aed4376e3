package requests

// GenerateClinicalNotes is the body of POST /generate-notes. Pointer
// fields so a missing key fails validation while an explicit empty
// string is accepted; whether the content is sufficient is the model's
// call, not ours.
type GenerateClinicalNotes struct {
	Transcript      *string `json:"transcript" validate:"required"`
	ObservedActions *string `json:"observed_actions" validate:"required"`
}
