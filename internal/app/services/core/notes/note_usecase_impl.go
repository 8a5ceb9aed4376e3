package notes

import (
	"context"
	"errors"
	"precharting-service/internal/app/contracts"
	"precharting-service/internal/app/models"
	"precharting-service/internal/pkg/clinical"
	"precharting-service/internal/pkg/constvars"
	"precharting-service/internal/pkg/dto/requests"
	"precharting-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type clinicalNoteUsecase struct {
	NoteRepository contracts.ClinicalNoteRepository
	Provider       contracts.AIProvider
	Log            *zap.Logger
}

var (
	clinicalNoteUsecaseInstance contracts.ClinicalNoteUsecase
	onceClinicalNoteUsecase     sync.Once
)

func NewClinicalNoteUsecase(
	noteRepository contracts.ClinicalNoteRepository,
	provider contracts.AIProvider,
	logger *zap.Logger,
) contracts.ClinicalNoteUsecase {
	onceClinicalNoteUsecase.Do(func() {
		instance := &clinicalNoteUsecase{
			NoteRepository: noteRepository,
			Provider:       provider,
			Log:            logger,
		}
		clinicalNoteUsecaseInstance = instance
	})
	return clinicalNoteUsecaseInstance
}

func (uc *clinicalNoteUsecase) TranscribeAudio(ctx context.Context, upload *contracts.AudioUpload) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicalNoteUsecase.TranscribeAudio called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilenameKey, upload.Filename),
	)

	transcript, err := uc.Provider.Transcribe(ctx, upload)
	if err != nil {
		return "", err
	}
	return transcript, nil
}

// GenerateClinicalNotes is the end-to-end extraction flow: prompt →
// completion → sanitize → validate → assemble → persist. Nothing is
// persisted unless validation fully succeeds; once it has, a failed
// insert is logged and the validated document is still returned, since
// the extraction itself is the product and storage is best-effort.
func (uc *clinicalNoteUsecase) GenerateClinicalNotes(ctx context.Context, request *requests.GenerateClinicalNotes) (*clinical.ClinicalOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicalNoteUsecase.GenerateClinicalNotes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	transcript := *request.Transcript
	observedActions := *request.ObservedActions

	messages := buildClinicalPromptMessages(transcript, observedActions)
	rawResponse, err := uc.Provider.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	sanitized := clinical.SanitizeModelResponse(rawResponse)
	output, err := clinical.ValidateClinicalOutput(sanitized)
	if err != nil {
		var schemaErr *clinical.SchemaError
		if errors.As(err, &schemaErr) {
			uc.Log.Error("clinicalNoteUsecase.GenerateClinicalNotes schema validation failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrLLMResponseSchema(err)
		}
		uc.Log.Error("clinicalNoteUsecase.GenerateClinicalNotes failed to parse model response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrLLMResponseParse(err)
	}

	note := models.NewClinicalNote(transcript, observedActions, output)
	if err := uc.NoteRepository.InsertClinicalNote(ctx, note); err != nil {
		uc.Log.Warn("clinicalNoteUsecase.GenerateClinicalNotes failed to persist note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNoteIDKey, note.ID),
			zap.Error(err),
		)
		return output, nil
	}

	uc.Log.Info("clinicalNoteUsecase.GenerateClinicalNotes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNoteIDKey, note.ID),
	)
	return output, nil
}

func (uc *clinicalNoteUsecase) ListClinicalNotes(ctx context.Context) ([]models.ClinicalNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicalNoteUsecase.ListClinicalNotes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	notes, err := uc.NoteRepository.FindClinicalNotes(ctx, constvars.ClinicalNotesFindLimit)
	if err != nil {
		return nil, err
	}
	return notes, nil
}
