package utils

import (
	"encoding/hex"
	"precharting-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateNoteID returns an opaque 32-character hex token.
func GenerateNoteID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
