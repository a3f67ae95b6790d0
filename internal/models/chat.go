package models

import (
	"time"
)

// ChatLogCap bounds the retained chat history
const ChatLogCap = 50

// ChatMessage is one entry in the shared session chat. Append-only; the
// oldest entries are dropped past ChatLogCap.
type ChatMessage struct {
	// ID is the unique identifier for the message
	ID string

	// ParticipantID is who sent it
	ParticipantID string

	// Name is the sender's display name at send time
	Name string

	// Text is the message body
	Text string

	// SentAt is when the message was sent
	SentAt time.Time
}
