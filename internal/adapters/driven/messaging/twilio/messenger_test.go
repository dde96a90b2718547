package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
)

func TestConfigured(t *testing.T) {
	assert.False(t, NewMessenger(Config{}).Configured())
	assert.False(t, NewMessenger(Config{AccountSID: "AC1", AuthToken: "tok"}).Configured())
	assert.True(t, NewMessenger(Config{AccountSID: "AC1", AuthToken: "tok", FromNumber: "+14155550100"}).Configured())
}

func TestSend_UnconfiguredIsExplicitNoOp(t *testing.T) {
	messenger := NewMessenger(Config{})

	err := messenger.Send(context.Background(), "+15551234567", []domain.Message{{Body: "hi"}})
	assert.ErrorIs(t, err, domain.ErrMessengerUnavailable)
}

func TestSend_PostsFormWithWhatsAppPrefix(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotBody string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotFrom = r.PostForm.Get("From")
		gotTo = r.PostForm.Get("To")
		gotBody = r.PostForm.Get("Body")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
	}))
	defer server.Close()

	messenger := NewMessenger(Config{
		AccountSID: "AC1",
		AuthToken:  "secret",
		FromNumber: "+14155550100",
		BaseURL:    server.URL,
	})

	err := messenger.Send(context.Background(), "+15551234567", []domain.Message{{Body: "Your review is ready."}})
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC1/Messages.json", gotPath)
	assert.Equal(t, "AC1", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "whatsapp:+14155550100", gotFrom)
	assert.Equal(t, "whatsapp:+15551234567", gotTo)
	assert.Equal(t, "Your review is ready.", gotBody)
}

func TestSend_APIErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":20003,"message":"Authentication Error"}`))
	}))
	defer server.Close()

	messenger := NewMessenger(Config{
		AccountSID: "AC1",
		AuthToken:  "wrong",
		FromNumber: "+14155550100",
		BaseURL:    server.URL,
	})

	err := messenger.Send(context.Background(), "+15551234567", []domain.Message{{Body: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Authentication Error")
}

func TestSend_SplitsLongMessages(t *testing.T) {
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		bodies = append(bodies, r.PostForm.Get("Body"))
		_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
	}))
	defer server.Close()

	messenger := NewMessenger(Config{
		AccountSID: "AC1",
		AuthToken:  "tok",
		FromNumber: "+14155550100",
		BaseURL:    server.URL,
	})

	long := strings.Repeat("A paragraph about resume customization.\n\n", 40)
	err := messenger.Send(context.Background(), "+15551234567", []domain.Message{{Body: long}})
	require.NoError(t, err)

	require.Greater(t, len(bodies), 1)
	for i, body := range bodies {
		assert.LessOrEqual(t, len(body), maxMessageLength)
		assert.Contains(t, body, "(", "part %d should carry a part marker", i)
	}
}

func TestSplitMessage_ShortMessageUntouched(t *testing.T) {
	parts := SplitMessage("short message")
	require.Len(t, parts, 1)
	assert.Equal(t, "short message", parts[0])
}

func TestSplitMessage_BreaksOnParagraphs(t *testing.T) {
	paragraph := strings.Repeat("x", 400)
	message := paragraph + "\n\n" + paragraph + "\n\n" + paragraph

	parts := SplitMessage(message)
	require.Len(t, parts, 2)

	assert.True(t, strings.HasSuffix(parts[0], "(1/2)"))
	assert.True(t, strings.HasSuffix(parts[1], "(2/2)"))
	for _, part := range parts {
		assert.LessOrEqual(t, len(part), maxMessageLength)
	}
}

func TestSplitMessage_HardSplitsOversizedParagraph(t *testing.T) {
	message := strings.Repeat("y", 2500)

	parts := SplitMessage(message)
	require.Greater(t, len(parts), 2)
	for _, part := range parts {
		assert.LessOrEqual(t, len(part), maxMessageLength)
	}
}
