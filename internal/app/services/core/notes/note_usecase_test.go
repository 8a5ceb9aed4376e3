package notes

import (
	"context"
	"errors"
	"precharting-service/internal/app/contracts"
	"precharting-service/internal/app/models"
	"precharting-service/internal/pkg/dto/requests"
	"precharting-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAIProvider struct {
	mock.Mock
}

func (m *MockAIProvider) Transcribe(ctx context.Context, upload *contracts.AudioUpload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func (m *MockAIProvider) Complete(ctx context.Context, messages []contracts.ChatMessage) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

type MockClinicalNoteRepository struct {
	mock.Mock
}

func (m *MockClinicalNoteRepository) InsertClinicalNote(ctx context.Context, note *models.ClinicalNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockClinicalNoteRepository) FindClinicalNotes(ctx context.Context, limit int64) ([]models.ClinicalNote, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClinicalNote), args.Error(1)
}

func newTestUsecase(provider contracts.AIProvider, repository contracts.ClinicalNoteRepository) *clinicalNoteUsecase {
	return &clinicalNoteUsecase{
		NoteRepository: repository,
		Provider:       provider,
		Log:            zap.NewNop(),
	}
}

func generateRequest(transcript, observedActions string) *requests.GenerateClinicalNotes {
	return &requests.GenerateClinicalNotes{
		Transcript:      &transcript,
		ObservedActions: &observedActions,
	}
}

const validModelResponse = `{
  "subjective": "Patient reports chest pain since this morning, sharp, central.",
  "objective": "Clutching chest, appears anxious.",
  "assessment": "Possible acute coronary syndrome.",
  "plan": "Immediate ECG and troponin levels.",
  "icd10_codes": [{"condition": "Chest pain, unspecified", "code": "R07.9"}],
  "medication_interactions": [],
  "red_flags": ["chest pain"],
  "non_verbal_signs": ["clutching chest"],
  "clinical_summary": "Acute chest pain with red-flag features."
}`

func TestGenerateClinicalNotes_Success(t *testing.T) {
	provider := new(MockAIProvider)
	repository := new(MockClinicalNoteRepository)
	uc := newTestUsecase(provider, repository)

	provider.On("Complete", mock.Anything, mock.AnythingOfType("[]contracts.ChatMessage")).Return(validModelResponse, nil)
	repository.On("InsertClinicalNote", mock.Anything, mock.AnythingOfType("*models.ClinicalNote")).Return(nil)

	request := generateRequest(
		"Patient reports chest pain since this morning, sharp, central.",
		"Clutching chest, appears anxious",
	)
	output, err := uc.GenerateClinicalNotes(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, []string{"chest pain"}, output.RedFlags)
	repository.AssertNumberOfCalls(t, "InsertClinicalNote", 1)

	insertedNote := repository.Calls[0].Arguments.Get(1).(*models.ClinicalNote)
	assert.NotEmpty(t, insertedNote.ID)
	assert.NotEmpty(t, insertedNote.Timestamp)
	assert.Equal(t, *request.Transcript, insertedNote.Transcript)
	assert.Equal(t, *request.ObservedActions, insertedNote.ObservedActions)
	assert.Equal(t, *output, insertedNote.ClinicalOutput)
}

func TestGenerateClinicalNotes_FencedModelResponse(t *testing.T) {
	provider := new(MockAIProvider)
	repository := new(MockClinicalNoteRepository)
	uc := newTestUsecase(provider, repository)

	provider.On("Complete", mock.Anything, mock.Anything).Return("```json\n"+validModelResponse+"\n```", nil)
	repository.On("InsertClinicalNote", mock.Anything, mock.Anything).Return(nil)

	output, err := uc.GenerateClinicalNotes(context.Background(), generateRequest("transcript", "actions"))

	require.NoError(t, err)
	assert.Equal(t, []string{"chest pain"}, output.RedFlags)
}

func TestGenerateClinicalNotes_NonJSONResponse(t *testing.T) {
	provider := new(MockAIProvider)
	repository := new(MockClinicalNoteRepository)
	uc := newTestUsecase(provider, repository)

	provider.On("Complete", mock.Anything, mock.Anything).Return("I cannot help with that.", nil)

	output, err := uc.GenerateClinicalNotes(context.Background(), generateRequest("transcript", "actions"))

	assert.Nil(t, output)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 500, customErr.StatusCode)
	repository.AssertNotCalled(t, "InsertClinicalNote")
}

func TestGenerateClinicalNotes_SchemaViolation(t *testing.T) {
	provider := new(MockAIProvider)
	repository := new(MockClinicalNoteRepository)
	uc := newTestUsecase(provider, repository)

	// Valid JSON missing red_flags entirely.
	provider.On("Complete", mock.Anything, mock.Anything).Return(`{"subjective": "ok"}`, nil)

	output, err := uc.GenerateClinicalNotes(context.Background(), generateRequest("transcript", "actions"))

	assert.Nil(t, output)
	require.Error(t, err)
	repository.AssertNotCalled(t, "InsertClinicalNote")
}

func TestGenerateClinicalNotes_ProviderFailure(t *testing.T) {
	provider := new(MockAIProvider)
	repository := new(MockClinicalNoteRepository)
	uc := newTestUsecase(provider, repository)

	provider.On("Complete", mock.Anything, mock.Anything).Return("", exceptions.ErrCompletionProvider(errors.New("connection refused")))

	output, err := uc.GenerateClinicalNotes(context.Background(), generateRequest("transcript", "actions"))

	assert.Nil(t, output)
	require.Error(t, err)
	repository.AssertNotCalled(t, "InsertClinicalNote")
}

func TestGenerateClinicalNotes_PersistenceFailureStillReturnsDocument(t *testing.T) {
	provider := new(MockAIProvider)
	repository := new(MockClinicalNoteRepository)
	uc := newTestUsecase(provider, repository)

	provider.On("Complete", mock.Anything, mock.Anything).Return(validModelResponse, nil)
	repository.On("InsertClinicalNote", mock.Anything, mock.Anything).Return(exceptions.ErrMongoDBInsertDocument(errors.New("server selection timeout")))

	output, err := uc.GenerateClinicalNotes(context.Background(), generateRequest("transcript", "actions"))

	require.NoError(t, err, "storage is best-effort once extraction succeeded")
	assert.Equal(t, []string{"chest pain"}, output.RedFlags)
}

func TestGenerateClinicalNotes_PromptEmbedsInputs(t *testing.T) {
	provider := new(MockAIProvider)
	repository := new(MockClinicalNoteRepository)
	uc := newTestUsecase(provider, repository)

	var captured []contracts.ChatMessage
	provider.On("Complete", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]contracts.ChatMessage)
	}).Return(validModelResponse, nil)
	repository.On("InsertClinicalNote", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.GenerateClinicalNotes(context.Background(), generateRequest("the transcript text", "the observed actions"))

	require.NoError(t, err)
	require.Len(t, captured, 2)
	assert.Equal(t, "system", captured[0].Role)
	assert.Contains(t, captured[0].Content, "ClinicalNoteGPT")
	assert.Equal(t, "user", captured[1].Role)
	assert.Contains(t, captured[1].Content, "the transcript text")
	assert.Contains(t, captured[1].Content, "the observed actions")
	assert.Contains(t, captured[1].Content, `"icd10_codes"`)
}

func TestTranscribeAudio(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		provider := new(MockAIProvider)
		repository := new(MockClinicalNoteRepository)
		uc := newTestUsecase(provider, repository)

		upload := &contracts.AudioUpload{Data: []byte("audio-bytes"), Filename: "visit.wav"}
		provider.On("Transcribe", mock.Anything, upload).Return("Patient reports chest pain.", nil)

		transcript, err := uc.TranscribeAudio(context.Background(), upload)

		require.NoError(t, err)
		assert.Equal(t, "Patient reports chest pain.", transcript)
	})

	t.Run("Provider Failure", func(t *testing.T) {
		provider := new(MockAIProvider)
		repository := new(MockClinicalNoteRepository)
		uc := newTestUsecase(provider, repository)

		provider.On("Transcribe", mock.Anything, mock.Anything).Return("", exceptions.ErrTranscriptionProvider(errors.New("bad gateway")))

		transcript, err := uc.TranscribeAudio(context.Background(), &contracts.AudioUpload{Data: []byte("x")})

		assert.Empty(t, transcript)
		require.Error(t, err)
	})
}

func TestListClinicalNotes(t *testing.T) {
	t.Run("Caps The Lookup", func(t *testing.T) {
		provider := new(MockAIProvider)
		repository := new(MockClinicalNoteRepository)
		uc := newTestUsecase(provider, repository)

		repository.On("FindClinicalNotes", mock.Anything, int64(1000)).Return([]models.ClinicalNote{}, nil)

		notes, err := uc.ListClinicalNotes(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
		repository.AssertExpectations(t)
	})

	t.Run("Repository Failure", func(t *testing.T) {
		provider := new(MockAIProvider)
		repository := new(MockClinicalNoteRepository)
		uc := newTestUsecase(provider, repository)

		repository.On("FindClinicalNotes", mock.Anything, mock.Anything).Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("cursor error")))

		notes, err := uc.ListClinicalNotes(context.Background())

		assert.Nil(t, notes)
		require.Error(t, err)
	})
}
