package routers

import (
	"precharting-service/internal/app/services/core/notes"

	"github.com/go-chi/chi/v5"
)

func attachNoteRoutes(router chi.Router, noteController *notes.ClinicalNoteController) {
	router.Get("/", noteController.Root)
	router.Post("/transcribe", noteController.TranscribeAudio)
	router.Post("/generate-notes", noteController.GenerateClinicalNotes)
	router.Get("/notes", noteController.ListClinicalNotes)
}
