package events

// Send events carry no detail fields; the object is present but empty.
type Send struct{}

// Reject contains info for Reject events.
type Reject struct {
	Reason string `json:"reason"`
}
