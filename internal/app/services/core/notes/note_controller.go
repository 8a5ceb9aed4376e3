package notes

import (
	"context"
	"io"
	"net/http"
	"precharting-service/internal/app/contracts"
	"precharting-service/internal/pkg/constvars"
	"precharting-service/internal/pkg/dto/requests"
	"precharting-service/internal/pkg/dto/responses"
	"precharting-service/internal/pkg/exceptions"
	"precharting-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ClinicalNoteController struct {
	Log                 *zap.Logger
	ClinicalNoteUsecase contracts.ClinicalNoteUsecase
}

func NewClinicalNoteController(logger *zap.Logger, clinicalNoteUsecase contracts.ClinicalNoteUsecase) *ClinicalNoteController {
	return &ClinicalNoteController{
		Log:                 logger,
		ClinicalNoteUsecase: clinicalNoteUsecase,
	}
}

func (ctrl *ClinicalNoteController) Root(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Message{Message: constvars.APIRootMessage})
}

func (ctrl *ClinicalNoteController) TranscribeAudio(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(constvars.MultipartMaxMemoryBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.FormFieldAudioFile)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingUploadFile(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadUploadFile(err))
		return
	}

	upload := &contracts.AudioUpload{
		Data:     data,
		Filename: fileHeader.Filename,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	transcript, err := ctrl.ClinicalNoteUsecase.TranscribeAudio(ctx, upload)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Transcription{Transcript: transcript})
}

func (ctrl *ClinicalNoteController) GenerateClinicalNotes(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GenerateClinicalNotes)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	output, err := ctrl.ClinicalNoteUsecase.GenerateClinicalNotes(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, output)
}

func (ctrl *ClinicalNoteController) ListClinicalNotes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	notes, err := ctrl.ClinicalNoteUsecase.ListClinicalNotes(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, notes)
}
