package model

import "time"

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "ai"
)

// MessageType classifies assistant messages
type MessageType string

const (
	MessageTypeNone       MessageType = ""
	MessageTypeSuggestion MessageType = "suggestion"
	MessageTypeExercise   MessageType = "exercise"
	MessageTypeMotivation MessageType = "motivation"
)

// ChatMessage is one entry in a copilot conversation
type ChatMessage struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Sender    Sender      `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type,omitempty"`
	Topic     string      `json:"topic,omitempty"` // matched rule, assistant only
}

// ChatSuggestion is a canned prompt offered to the user
type ChatSuggestion struct {
	Text  string `json:"text"`
	Topic string `json:"type"`
}
