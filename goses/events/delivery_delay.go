package events

// DeliveryDelay contains info for DeliveryDelay events. The pipeline
// does not map these to a tracking event type yet; the model is kept
// so the raw payload round-trips intact.
type DeliveryDelay struct {
	DelayType         string             `json:"delayType"`
	DelayedRecipients []DelayedRecipient `json:"delayedRecipients"`
	Timestamp         string             `json:"timestamp"`
	ExpirationTime    string             `json:"expirationTime"`
	ReportingMTA      string             `json:"reportingMTA"`
}

type DelayedRecipient struct {
	EmailAddress   string `json:"emailAddress"`
	Status         string `json:"status"`
	DiagnosticCode string `json:"diagnosticCode"`
}
