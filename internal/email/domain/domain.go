package domain

import "context"

// Message is a fully formed outbound email. AttachmentPath may be empty, in
// which case no file is attached.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
	AttachmentName string
}

// Sender is a pluggable email sending interface. Implementations perform a
// single delivery attempt and return the transport error verbatim.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
