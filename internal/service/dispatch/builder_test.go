package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/chat-notifier/internal/mention"
	"github.com/aliskhannn/chat-notifier/internal/model"
)

const validToken = "tokentokentoken"

func buildFor(t *testing.T, n model.ChatNotification) ([]string, []model.RecipientTrace) {
	t.Helper()

	set := mention.Resolve(n.Message, n.MentionedUserIDs, n.Participants)
	messages, trace := BuildMessages(n, set)
	require.Equal(t, len(messages), len(trace), "messages and trace must stay positionally aligned")

	tokens := make([]string, 0, len(messages))
	for _, m := range messages {
		tokens = append(tokens, m.Token)
	}
	return tokens, trace
}

func TestBuildMessages_MentionedRecipient(t *testing.T) {
	n := model.ChatNotification{
		ChatID:   "7",
		SenderID: "1",
		Message:  "@Bob please check this",
		Type:     model.DefaultType,
		Screen:   model.DefaultScreen,
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice"},
			{UserID: "2", Name: "Bob", Tokens: []string{validToken}},
		},
	}

	set := mention.Resolve(n.Message, n.MentionedUserIDs, n.Participants)
	messages, trace := BuildMessages(n, set)

	require.Len(t, messages, 1)
	m := messages[0]
	assert.Equal(t, validToken, m.Token)
	assert.Equal(t, "You were mentioned", m.Notification.Title)
	assert.Equal(t, "Alice: @Bob please check this", m.Notification.Body)
	assert.Equal(t, "default", m.Android.Notification.Sound)
	assert.Equal(t, "1", m.Data["isMentioned"])
	assert.Equal(t, "7", m.Data["chatId"])
	assert.Equal(t, "chat", m.Data["type"])
	assert.Equal(t, "ChatThreadScreen", m.Data["screen"])
	assert.NotContains(t, m.Data, "parentMessageId")

	require.Len(t, trace, 1)
	assert.Equal(t, "2", trace[0].RecipientUserID)
	assert.True(t, trace[0].IsMentioned)
}

func TestBuildMessages_MentionedInGroup(t *testing.T) {
	n := model.ChatNotification{
		ChatID:    "7",
		SenderID:  "1",
		Message:   "@Bob please check this",
		GroupName: "Sales Team",
		Type:      model.DefaultType,
		Screen:    model.DefaultScreen,
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice"},
			{UserID: "2", Name: "Bob", Tokens: []string{validToken}},
		},
	}

	set := mention.Resolve(n.Message, n.MentionedUserIDs, n.Participants)
	messages, _ := BuildMessages(n, set)

	require.Len(t, messages, 1)
	assert.Equal(t, "You were mentioned in Sales Team", messages[0].Notification.Title)
}

func TestBuildMessages_NoMentions(t *testing.T) {
	n := model.ChatNotification{
		ChatID:   "7",
		SenderID: "1",
		Message:  "meeting moved to 3pm",
		Type:     model.DefaultType,
		Screen:   model.DefaultScreen,
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice"},
			{UserID: "2", Name: "Bob", Tokens: []string{"bob-device-token"}},
			{UserID: "3", Name: "Carol", Tokens: []string{"carol-device-token"}},
		},
	}

	set := mention.Resolve(n.Message, n.MentionedUserIDs, n.Participants)
	messages, _ := BuildMessages(n, set)

	require.Len(t, messages, 2)
	for _, m := range messages {
		assert.Equal(t, "New Chat Message", m.Notification.Title)
		assert.Equal(t, "Alice: meeting moved to 3pm", m.Notification.Body)
		assert.Equal(t, "0", m.Data["isMentioned"])
	}
}

func TestBuildMessages_NonMentionedSeesMentionCopy(t *testing.T) {
	n := model.ChatNotification{
		ChatID:           "7",
		SenderID:         "1",
		Message:          "@Bob take a look",
		MentionedUserIDs: []string{"2"},
		Type:             model.DefaultType,
		Screen:           model.DefaultScreen,
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice"},
			{UserID: "2", Name: "Bob", Tokens: []string{"bob-device-token"}},
			{UserID: "3", Name: "Carol", Tokens: []string{"carol-device-token"}},
		},
	}

	set := mention.Resolve(n.Message, n.MentionedUserIDs, n.Participants)
	messages, trace := BuildMessages(n, set)

	require.Len(t, messages, 2)
	assert.Equal(t, "Alice: @Bob take a look", messages[0].Notification.Body)
	assert.True(t, trace[0].IsMentioned)
	assert.Equal(t, "Alice mentioned @Bob: @Bob take a look", messages[1].Notification.Body)
	assert.False(t, trace[1].IsMentioned)
}

func TestBuildMessages_ExplicitIDsTakePrecedence(t *testing.T) {
	// The text mentions Charlie, but the client resolved only Bob.
	n := model.ChatNotification{
		ChatID:           "7",
		SenderID:         "1",
		Message:          "ping @Charlie",
		MentionedUserIDs: []string{"2"},
		Type:             model.DefaultType,
		Screen:           model.DefaultScreen,
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice"},
			{UserID: "2", Name: "Bob", Tokens: []string{"bob-device-token"}},
			{UserID: "3", Name: "Charlie", Tokens: []string{"charlie-device-tok"}},
		},
	}

	set := mention.Resolve(n.Message, n.MentionedUserIDs, n.Participants)
	_, trace := BuildMessages(n, set)

	require.Len(t, trace, 2)
	assert.True(t, trace[0].IsMentioned, "Bob is in the explicit list")
	assert.False(t, trace[1].IsMentioned, "Charlie matches by text only, explicit ids win")
}

func TestBuildMessages_SenderExcluded(t *testing.T) {
	n := model.ChatNotification{
		ChatID:   "7",
		SenderID: "1",
		Message:  "hello",
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice", Tokens: []string{"alice-device-token"}},
			{UserID: "2", Name: "Bob", Tokens: []string{"bob-device-token"}},
		},
	}

	tokens, trace := buildFor(t, n)

	assert.Equal(t, []string{"bob-device-token"}, tokens)
	for _, tr := range trace {
		assert.NotEqual(t, "1", tr.RecipientUserID)
	}
}

func TestBuildMessages_TokenFiltering(t *testing.T) {
	n := model.ChatNotification{
		ChatID:   "7",
		SenderID: "1",
		Message:  "hello",
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice"},
			{UserID: "2", Name: "Bob", Tokens: []string{"", "short", "0123456789", "bob-device-token"}},
		},
	}

	tokens, _ := buildFor(t, n)

	assert.Equal(t, []string{"bob-device-token"}, tokens)
}

func TestBuildMessages_AllTokensInvalid(t *testing.T) {
	n := model.ChatNotification{
		ChatID:   "7",
		SenderID: "1",
		Message:  "hello",
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice"},
			{UserID: "2", Name: "Bob", Tokens: []string{"nope", ""}},
			{UserID: "3", Name: "Carol"},
		},
	}

	tokens, trace := buildFor(t, n)

	assert.Empty(t, tokens)
	assert.Empty(t, trace)
}

func TestBuildMessages_MultipleTokensPerParticipant(t *testing.T) {
	n := model.ChatNotification{
		ChatID:   "7",
		SenderID: "1",
		Message:  "hello",
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice"},
			{UserID: "2", Name: "Bob", Tokens: []string{"bob-device-one", "bob-device-two"}},
		},
	}

	tokens, trace := buildFor(t, n)

	assert.Equal(t, []string{"bob-device-one", "bob-device-two"}, tokens)
	require.Len(t, trace, 2)
	assert.Equal(t, trace[0].RecipientUserID, trace[1].RecipientUserID)
}

func TestBuildMessages_UnknownSenderName(t *testing.T) {
	n := model.ChatNotification{
		ChatID:   "7",
		SenderID: "99",
		Message:  "hello",
		Participants: []model.Participant{
			{UserID: "2", Name: "Bob", Tokens: []string{"bob-device-token"}},
		},
	}

	set := mention.Resolve(n.Message, n.MentionedUserIDs, n.Participants)
	messages, _ := BuildMessages(n, set)

	require.Len(t, messages, 1)
	assert.Equal(t, "Someone: hello", messages[0].Notification.Body)
}

func TestBuildMessages_ParentMessageID(t *testing.T) {
	n := model.ChatNotification{
		ChatID:          "7",
		SenderID:        "1",
		Message:         "hello",
		ParentMessageID: "555",
		Participants: []model.Participant{
			{UserID: "1", Name: "Alice"},
			{UserID: "2", Name: "Bob", Tokens: []string{"bob-device-token"}},
		},
	}

	set := mention.Resolve(n.Message, n.MentionedUserIDs, n.Participants)
	messages, _ := BuildMessages(n, set)

	require.Len(t, messages, 1)
	assert.Equal(t, "555", messages[0].Data["parentMessageId"])
}
