package constvars

// Client-facing messages. These become the "detail" field of error
// responses, so they have to stand on their own without dev context.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your request"
	ErrClientMissingUploadFile             = "An audio file is required"
	ErrClientServerLongRespond             = "Server takes too long to respond"
	ErrClientTranscriptionFailed           = "Transcription failed"
	ErrClientNotesGenerationFailed         = "Clinical notes generation failed"
	ErrClientLLMResponseParse              = "Failed to parse LLM response"
	ErrClientLLMResponseSchema             = "LLM response did not match the expected clinical note schema"
)

// Developer messages, logged server-side only.
const (
	ErrDevValidationFailed            = "Input validation failed"
	ErrDevInvalidInput                = "Invalid input"
	ErrDevCannotParseJSON             = "Cannot parse JSON request body"
	ErrDevCannotParseMultipartForm    = "Cannot parse multipart form"
	ErrDevMissingUploadFile           = "Multipart form has no audio file part"
	ErrDevCannotReadUploadFile        = "Cannot read uploaded audio file"
	ErrDevCannotMarshalJSON           = "Cannot marshal JSON"
	ErrDevCreateHTTPRequest           = "Failed to create HTTP request"
	ErrDevSendHTTPRequest             = "Failed to send HTTP request"
	ErrDevServerDeadlineExceeded      = "Server deadline exceeded"
	ErrDevTranscriptionProvider       = "Speech-to-text provider call failed"
	ErrDevTranscriptionEnvelope       = "Speech-to-text response has no extractable text"
	ErrDevCompletionProvider          = "Completion provider call failed"
	ErrDevCompletionEnvelope          = "Completion response has no extractable content"
	ErrDevLLMResponseParse            = "Model response is not valid JSON"
	ErrDevLLMResponseSchema           = "Model response failed clinical schema validation"
	ErrDevMongoDBFailedInsertDocument = "MongoDB failed to insert document"
	ErrDevMongoDBFailedFindDocument   = "MongoDB failed to find document(s)"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
