package clinical

import "strings"

const (
	jsonFenceOpener    = "```json"
	genericFenceOpener = "```"
	fenceCloser        = "```"
)

// SanitizeModelResponse strips incidental markdown formatting from a raw
// model response so the remainder can be parsed as JSON. Models routinely
// wrap their output in a fenced code block even when told not to.
// Best-effort and side-effect free: text without fences passes through
// unchanged, and a fence with no content collapses to an empty string.
func SanitizeModelResponse(raw string) string {
	content := strings.TrimSpace(raw)

	if strings.HasPrefix(content, jsonFenceOpener) {
		content = content[len(jsonFenceOpener):]
	} else if strings.HasPrefix(content, genericFenceOpener) {
		content = content[len(genericFenceOpener):]
	}
	if strings.HasSuffix(content, fenceCloser) {
		content = content[:len(content)-len(fenceCloser)]
	}

	return strings.TrimSpace(content)
}
