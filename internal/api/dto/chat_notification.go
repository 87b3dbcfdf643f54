package dto

import (
	"encoding/json"
	"fmt"

	"github.com/aliskhannn/chat-notifier/internal/model"
)

// FlexibleID is an identifier that arrives on the wire as either a JSON
// string or a JSON number. It is converted to a string once, at decode time.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number")
	}
	*f = FlexibleID(n.String())
	return nil
}

// TokenList is a device token field that arrives as either a single token or
// an array of tokens. It is normalized to a slice at decode time.
type TokenList []string

func (t *TokenList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = nil
		return nil
	}

	if len(b) > 0 && b[0] == '[' {
		var tokens []string
		if err := json.Unmarshal(b, &tokens); err != nil {
			return err
		}
		*t = tokens
		return nil
	}

	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return fmt.Errorf("fcmToken must be a string or an array of strings")
	}
	*t = TokenList{token}
	return nil
}

// ParticipantRequest is one chat member in the inbound payload.
type ParticipantRequest struct {
	UserID FlexibleID `json:"userId" validate:"required"`
	Name   string     `json:"name"`
	Tokens TokenList  `json:"fcmToken"`
}

// ChatNotificationRequest is the inbound payload for a chat message
// notification.
type ChatNotificationRequest struct {
	ChatID           FlexibleID           `json:"chatId" validate:"required"`
	SenderID         FlexibleID           `json:"senderId" validate:"required"`
	Message          string               `json:"message" validate:"required"`
	Participants     []ParticipantRequest `json:"participants" validate:"required,min=1,dive"`
	GroupName        string               `json:"groupName"`
	MentionedUserIDs []FlexibleID         `json:"mentionedUserIds"`
	Type             string               `json:"type"`
	Screen           string               `json:"screen"`
	ParentMessageID  FlexibleID           `json:"parentMessageId"`
}

// ToModel converts the wire payload into the domain form, applying defaults
// for the optional category and route fields.
func (r ChatNotificationRequest) ToModel() model.ChatNotification {
	n := model.ChatNotification{
		ChatID:          string(r.ChatID),
		SenderID:        string(r.SenderID),
		Message:         r.Message,
		GroupName:       r.GroupName,
		Type:            r.Type,
		Screen:          r.Screen,
		ParentMessageID: string(r.ParentMessageID),
	}

	if n.Type == "" {
		n.Type = model.DefaultType
	}
	if n.Screen == "" {
		n.Screen = model.DefaultScreen
	}

	for _, id := range r.MentionedUserIDs {
		if id != "" {
			n.MentionedUserIDs = append(n.MentionedUserIDs, string(id))
		}
	}

	n.Participants = make([]model.Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		n.Participants = append(n.Participants, model.Participant{
			UserID: string(p.UserID),
			Name:   p.Name,
			Tokens: p.Tokens,
		})
	}

	return n
}
