package events

// Open contains info for Open events. SES does not attribute opens to
// a specific recipient.
type Open struct {
	IpAddress string `json:"ipAddress"`
	Timestamp string `json:"timestamp"`
	UserAgent string `json:"userAgent"`
}
