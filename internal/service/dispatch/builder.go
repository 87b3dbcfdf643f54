package dispatch

import (
	"github.com/aliskhannn/chat-notifier/internal/mention"
	"github.com/aliskhannn/chat-notifier/internal/model"
	"github.com/aliskhannn/chat-notifier/pkg/push"
)

// Tokens this short are placeholders left by the client, not real device
// tokens.
const minTokenLength = 11

const androidSound = "default"

// BuildMessages produces one push message per (participant, valid token)
// pair, excluding the sender, plus a debug trace entry per built message.
// Both slices keep participant iteration order, then token order.
func BuildMessages(n model.ChatNotification, mentions *mention.Set) ([]push.Message, []model.RecipientTrace) {
	senderName := senderDisplayName(n)
	firstMention := ""
	if !mentions.Empty() || len(mentions.Names) > 0 {
		firstMention = mention.FirstMentionName(mentions, n.Participants)
	}

	var messages []push.Message
	trace := make([]model.RecipientTrace, 0, len(n.Participants))

	for _, p := range n.Participants {
		if p.UserID == n.SenderID {
			continue
		}

		isMentioned := mentions.Contains(p.UserID)
		title := buildTitle(isMentioned, n.GroupName)
		body := buildBody(isMentioned, senderName, firstMention, n.Message, mentions)

		for _, token := range p.Tokens {
			if len(token) < minTokenLength {
				continue
			}

			data := map[string]string{
				"chatId":      n.ChatID,
				"type":        n.Type,
				"screen":      n.Screen,
				"isMentioned": boolFlag(isMentioned),
			}
			if n.ParentMessageID != "" {
				data["parentMessageId"] = n.ParentMessageID
			}

			messages = append(messages, push.Message{
				Token:        token,
				Notification: push.Notification{Title: title, Body: body},
				Android:      push.Android{Notification: push.AndroidNotification{Sound: androidSound}},
				Data:         data,
			})
			trace = append(trace, model.RecipientTrace{
				RecipientUserID: p.UserID,
				RecipientName:   p.Name,
				IsMentioned:     isMentioned,
				Title:           title,
				Body:            body,
			})
		}
	}

	return messages, trace
}

func buildTitle(isMentioned bool, groupName string) string {
	switch {
	case isMentioned && groupName != "":
		return "You were mentioned in " + groupName
	case isMentioned:
		return "You were mentioned"
	case groupName != "":
		return groupName
	default:
		return "New Chat Message"
	}
}

func buildBody(isMentioned bool, senderName, firstMention, message string, mentions *mention.Set) string {
	if !isMentioned && !mentions.Empty() && firstMention != "" {
		return senderName + " mentioned " + firstMention + ": " + message
	}
	return senderName + ": " + message
}

func senderDisplayName(n model.ChatNotification) string {
	for _, p := range n.Participants {
		if p.UserID == n.SenderID && p.Name != "" {
			return p.Name
		}
	}
	return "Someone"
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
