package contracts

import "context"

// ChatMessage is one turn of a completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AudioUpload carries raw audio bytes with the client's filename as a
// format hint. The bytes are forwarded to the provider verbatim and
// never stored.
type AudioUpload struct {
	Data     []byte
	Filename string
}

// AIProvider is the single capability set the orchestration layer needs
// from an AI vendor. Adapters normalize the vendor's response envelopes
// behind this boundary; provider choice is configuration, not a code
// fork.
type AIProvider interface {
	Transcribe(ctx context.Context, upload *AudioUpload) (string, error)
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
