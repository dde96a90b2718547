// Package twilio delivers outbound chat messages through the Twilio
// REST API (WhatsApp channel). Long messages are split into chat-sized
// parts on paragraph boundaries before sending.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/revu-cli/internal/logger"
)

// Ensure Messenger implements the interface.
var _ driven.Messenger = (*Messenger)(nil)

const (
	// DefaultBaseURL is the Twilio API endpoint.
	DefaultBaseURL = "https://api.twilio.com"

	// DefaultTimeout bounds a single send.
	DefaultTimeout = 30 * time.Second

	// maxMessageLength is the per-message character limit recommended
	// for WhatsApp delivery.
	maxMessageLength = 1000

	// partSuffixReserve leaves room for the "(i/n)" part marker.
	partSuffixReserve = 12

	// channelPrefix routes the message over the WhatsApp channel.
	channelPrefix = "whatsapp:"
)

// Config holds Twilio credentials and transport settings.
type Config struct {
	// AccountSID is the Twilio account identifier.
	AccountSID string

	// AuthToken is the Twilio API auth token.
	AuthToken string

	// FromNumber is the sending WhatsApp number (with country code).
	FromNumber string

	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string

	// Timeout bounds each API call (default: 30s).
	Timeout time.Duration
}

// Messenger sends messages via the Twilio REST API. Quick replies are
// advisory only; conversation message bodies already enumerate their
// options, so the plain-text transport does not render them separately.
type Messenger struct {
	client     *http.Client
	baseURL    string
	accountSID string
	authToken  string
	from       string
}

// sendResponse is the subset of the Twilio message resource we read.
type sendResponse struct {
	Sid     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// NewMessenger creates a Twilio messenger. Missing credentials are not
// an error; the messenger reports itself unconfigured and Send becomes
// a no-op with an explicit status.
func NewMessenger(cfg Config) *Messenger {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Messenger{
		client:     &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.FromNumber,
	}
}

// Configured reports whether all credentials are present.
func (m *Messenger) Configured() bool {
	return m.accountSID != "" && m.authToken != "" && m.from != ""
}

// Send delivers the messages to the user, in order. Each message is
// split into parts within the channel length limit.
func (m *Messenger) Send(ctx context.Context, userID string, messages []domain.Message) error {
	if !m.Configured() {
		logger.Warn("twilio: credentials not configured, dropping %d messages", len(messages))
		return domain.ErrMessengerUnavailable
	}

	for _, message := range messages {
		for _, part := range SplitMessage(message.Body) {
			if err := m.sendText(ctx, userID, part); err != nil {
				return err
			}
		}
	}

	return nil
}

// sendText posts one message to the Twilio Messages endpoint.
func (m *Messenger) sendText(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("From", withChannelPrefix(m.from))
	form.Set("To", withChannelPrefix(to))
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", m.baseURL, m.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(m.accountSID, m.authToken)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var parsed sendResponse
	if err := json.Unmarshal(respBody, &parsed); err == nil && parsed.Message != "" && resp.StatusCode >= 400 {
		return fmt.Errorf("twilio error %d: %s", parsed.Code, parsed.Message)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("twilio error (status %d): %s", resp.StatusCode, string(respBody))
	}

	logger.Debug("twilio: sent message %s status=%s", parsed.Sid, parsed.Status)
	return nil
}

// withChannelPrefix ensures the number carries the channel routing prefix.
func withChannelPrefix(number string) string {
	if strings.HasPrefix(number, channelPrefix) {
		return number
	}
	return channelPrefix + number
}

// SplitMessage splits a long message into parts that fit the channel
// limit, breaking on paragraph boundaries. Parts of a multi-part
// message carry a trailing "(i/n)" marker.
func SplitMessage(message string) []string {
	limit := maxMessageLength - partSuffixReserve
	if len(message) <= maxMessageLength {
		return []string{message}
	}

	var parts []string
	var current strings.Builder

	flush := func() {
		part := strings.TrimSpace(current.String())
		if part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}

	for _, paragraph := range strings.Split(message, "\n\n") {
		for len(paragraph) > limit {
			cut := limit
			for cut > 0 && !utf8.RuneStart(paragraph[cut]) {
				cut--
			}
			flush()
			current.WriteString(paragraph[:cut])
			paragraph = paragraph[cut:]
			flush()
		}
		if current.Len()+len(paragraph)+2 > limit {
			flush()
		}
		current.WriteString(paragraph)
		current.WriteString("\n\n")
	}
	flush()

	if len(parts) <= 1 {
		return parts
	}
	for i := range parts {
		parts[i] = fmt.Sprintf("%s\n(%d/%d)", parts[i], i+1, len(parts))
	}
	return parts
}
