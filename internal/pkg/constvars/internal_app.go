package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PRECHART_SVC_"
)

const (
	MongoCollectionClinicalNotes = "clinical_notes"
)

const (
	// ClinicalNotesFindLimit caps how many persisted notes a single
	// listing returns.
	ClinicalNotesFindLimit = 1000
)

const (
	FormFieldAudioFile      = "file"
	DefaultAudioFileName    = "audio.wav"
	MultipartMaxMemoryBytes = 32 << 20
)
