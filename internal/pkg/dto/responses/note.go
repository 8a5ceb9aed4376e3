package responses

type Message struct {
	Message string `json:"message"`
}

type Transcription struct {
	Transcript string `json:"transcript"`
}

type ErrorDetail struct {
	Detail string `json:"detail"`
}
