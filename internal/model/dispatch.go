package model

import (
	"time"

	"github.com/google/uuid"
)

// Dispatch statuses.
const (
	StatusQueued  = "queued"  // accepted and published to the queue, not processed yet
	StatusSent    = "sent"    // batch handed to the push provider
	StatusSkipped = "skipped" // no valid device tokens, nothing to send
	StatusFailed  = "failed"  // provider call failed
)

// Default values for optional request fields.
const (
	DefaultType   = "chat"
	DefaultScreen = "ChatThreadScreen"
)

// Participant is a member of the chat the message was posted to.
type Participant struct {
	UserID string   `json:"userId"`   // opaque identifier, compared as string
	Name   string   `json:"name"`     // display name, may be empty
	Tokens []string `json:"fcmToken"` // device tokens, normalized to a slice at the boundary
}

// ChatNotification is a validated notification request for one chat message.
type ChatNotification struct {
	ChatID           string        `json:"chatId"`
	SenderID         string        `json:"senderId"`
	Message          string        `json:"message"`
	GroupName        string        `json:"groupName"`
	Type             string        `json:"type"`
	Screen           string        `json:"screen"`
	ParentMessageID  string        `json:"parentMessageId"`
	MentionedUserIDs []string      `json:"mentionedUserIds"`
	Participants     []Participant `json:"participants"`
}

// RecipientTrace is one debug trace entry per built push message.
type RecipientTrace struct {
	RecipientUserID string `json:"recipientUserId"`
	RecipientName   string `json:"recipientName"`
	IsMentioned     bool   `json:"isMentioned"`
	Title           string `json:"title"`
	Body            string `json:"body"`
}

// Dispatch represents one processed notification request in the dispatch log.
type Dispatch struct {
	ID           uuid.UUID `json:"id"`
	ChatID       string    `json:"chat_id"`
	SenderID     string    `json:"sender_id"`
	GroupName    string    `json:"group_name"`
	Status       string    `json:"status"`
	Recipients   int       `json:"recipients"` // number of push messages built
	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
