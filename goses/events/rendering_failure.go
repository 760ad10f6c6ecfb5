package events

// RenderingFailure contains info for Rendering Failure events.
type RenderingFailure struct {
	TemplateName string `json:"templateName"`
	ErrorMessage string `json:"errorMessage"`
}
