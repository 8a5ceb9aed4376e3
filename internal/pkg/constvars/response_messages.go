package constvars

const (
	APIRootMessage = "Pre-Charting AI Assistant API"
)
