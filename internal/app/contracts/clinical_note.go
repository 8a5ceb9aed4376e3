package contracts

import (
	"context"
	"precharting-service/internal/app/models"
	"precharting-service/internal/pkg/clinical"
	"precharting-service/internal/pkg/dto/requests"
)

type ClinicalNoteUsecase interface {
	TranscribeAudio(ctx context.Context, upload *AudioUpload) (string, error)
	GenerateClinicalNotes(ctx context.Context, request *requests.GenerateClinicalNotes) (*clinical.ClinicalOutput, error)
	ListClinicalNotes(ctx context.Context) ([]models.ClinicalNote, error)
}

type ClinicalNoteRepository interface {
	InsertClinicalNote(ctx context.Context, note *models.ClinicalNote) error
	FindClinicalNotes(ctx context.Context, limit int64) ([]models.ClinicalNote, error)
}
