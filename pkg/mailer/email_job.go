package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (with Data) or Subject plus Text/HTML is set.
type EmailJob struct {
	To       string         `json:"to"`
	CC       []string       `json:"cc,omitempty"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // booking_created, booking_cancelled
	Data     map[string]any `json:"data,omitempty"`
}
