package models

import (
	"precharting-service/internal/pkg/clinical"
	"precharting-service/internal/pkg/utils"
	"time"
)

// ClinicalNote is the persisted record of one successful extraction.
// Created once, never updated or deleted by this service. The timestamp
// is stored as RFC3339 text so the store can sort records lexically.
type ClinicalNote struct {
	ID              string                  `json:"id" bson:"id"`
	Transcript      string                  `json:"transcript" bson:"transcript"`
	ObservedActions string                  `json:"observed_actions" bson:"observed_actions"`
	ClinicalOutput  clinical.ClinicalOutput `json:"clinical_output" bson:"clinical_output"`
	Timestamp       string                  `json:"timestamp" bson:"timestamp"`
}

func NewClinicalNote(transcript, observedActions string, output *clinical.ClinicalOutput) *ClinicalNote {
	return &ClinicalNote{
		ID:              utils.GenerateNoteID(),
		Transcript:      transcript,
		ObservedActions: observedActions,
		ClinicalOutput:  *output,
		Timestamp:       time.Now().UTC().Format(time.RFC3339Nano),
	}
}
