// Package webhook handles inbound chat messages in the Twilio webhook
// format. A message carrying a resume (as a media attachment or a PDF
// link) starts a review conversation; plain text continues one.
package webhook

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/revu-cli/internal/core/domain"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/revu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/revu-cli/internal/logger"
)

const (
	// minResumeChars is the minimum extracted text length accepted as a
	// resume. Shorter extractions are almost always scanned images.
	minResumeChars = 50

	// maxResumeBytes caps resume downloads.
	maxResumeBytes = 10 << 20

	// downloadTimeout bounds a media download.
	downloadTimeout = 30 * time.Second
)

// urlPattern finds links in a message body. The first link is treated
// as the resume, the second as the job posting.
var urlPattern = regexp.MustCompile(`https?://\S+`)

const helpMessage = `Hi! I review resumes against job postings.

Send your resume as a PDF attachment or link, optionally followed by a
job posting URL, and I'll send back a scored review.

Example:
https://example.com/resume.pdf https://jobs.example.com/role`

// Ports aggregates the services the webhook handler drives.
type Ports struct {
	// Review runs the resume review pipeline (required).
	Review driving.ReviewService

	// Conversation drives the follow-up dialogue (required).
	Conversation driving.ConversationService

	// Extractor converts PDF attachments to text, may be nil.
	Extractor driven.TextExtractor

	// Messenger delivers replies asynchronously. When nil or
	// unconfigured, replies ride back inline in the webhook response.
	Messenger driven.Messenger
}

// Handler is the inbound webhook HTTP handler.
type Handler struct {
	ports      Ports
	downloader *http.Client
}

// NewHandler creates the webhook handler.
func NewHandler(ports Ports) (*Handler, error) {
	if ports.Review == nil {
		return nil, errors.New("webhook: review service is required")
	}
	if ports.Conversation == nil {
		return nil, errors.New("webhook: conversation service is required")
	}
	return &Handler{
		ports:      ports,
		downloader: &http.Client{Timeout: downloadTimeout},
	}, nil
}

// Routes returns the HTTP handler with all webhook routes mounted.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook/whatsapp", h.handleInbound)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// twiml is the Twilio webhook response envelope.
type twiml struct {
	XMLName  xml.Name `xml:"Response"`
	Messages []string `xml:"Message,omitempty"`
}

func (h *Handler) handleInbound(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	from := r.FormValue("From")
	body := strings.TrimSpace(r.FormValue("Body"))
	profile := r.FormValue("ProfileName")
	if from == "" {
		http.Error(w, "missing From", http.StatusBadRequest)
		return
	}
	userID := strings.TrimPrefix(from, "whatsapp:")

	logger.Debug("webhook: inbound from %s, %d chars", userID, len(body))

	resumeText, jobURL, err := h.resumeFromRequest(r.Context(), r, body)
	if err != nil {
		h.reply(w, userID, []domain.Message{{Body: err.Error()}})
		return
	}

	if resumeText != "" {
		h.startReview(r.Context(), w, userID, profile, resumeText, jobURL)
		return
	}

	h.continueConversation(r.Context(), w, userID, body)
}

// resumeFromRequest pulls resume text out of the message: a PDF media
// attachment first, then a link in the body. Returns empty text when
// the message carries no resume.
func (h *Handler) resumeFromRequest(ctx context.Context, r *http.Request, body string) (string, string, error) {
	urls := urlPattern.FindAllString(body, -1)
	jobURL := ""

	if r.FormValue("NumMedia") != "" && r.FormValue("NumMedia") != "0" {
		mediaURL := r.FormValue("MediaUrl0")
		contentType := r.FormValue("MediaContentType0")
		if mediaURL == "" {
			return "", "", nil
		}
		if len(urls) > 0 {
			jobURL = urls[0]
		}
		text, err := h.fetchResume(ctx, mediaURL, contentType)
		return text, jobURL, err
	}

	if len(urls) == 0 {
		return "", "", nil
	}
	if len(urls) > 1 {
		jobURL = urls[1]
	}

	text, err := h.fetchResume(ctx, urls[0], "")
	return text, jobURL, err
}

// fetchResume downloads the document and extracts its text.
func (h *Handler) fetchResume(ctx context.Context, url, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", errors.New("I couldn't download your resume. Please check the link and try again.")
	}

	resp, err := h.downloader.Do(req)
	if err != nil {
		return "", errors.New("I couldn't download your resume. Please check the link and try again.")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("I couldn't download your resume. Please check the link and try again.")
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResumeBytes))
	if err != nil {
		return "", errors.New("I couldn't download your resume. Please check the link and try again.")
	}

	if contentType == "" {
		contentType = resp.Header.Get("Content-Type")
	}

	var text string
	if strings.Contains(contentType, "text/plain") {
		text = string(data)
	} else {
		if h.ports.Extractor == nil {
			return "", errors.New("PDF resumes are not supported right now. Please send plain text.")
		}
		text, err = h.ports.Extractor.Extract(ctx, data)
		if err != nil {
			return "", errors.New("I couldn't extract text from your resume. Please ensure it's a text-based PDF.")
		}
	}

	if len(strings.TrimSpace(text)) < minResumeChars {
		return "", errors.New("I couldn't extract meaningful text from your resume. Please ensure it's a text-based PDF.")
	}

	return text, nil
}

// startReview runs the pipeline and opens a conversation.
func (h *Handler) startReview(ctx context.Context, w http.ResponseWriter, userID, profile, resumeText, jobURL string) {
	review, err := h.ports.Review.Review(ctx, driving.ReviewRequest{
		ResumeText: resumeText,
		JobURL:     jobURL,
		UserID:     userID,
	})
	if err != nil {
		logger.Warn("webhook: review failed for %s: %v", userID, err)
		h.reply(w, userID, []domain.Message{{
			Body: "I hit an issue while analyzing your resume. Please try again in a moment.",
		}})
		return
	}

	messages, err := h.ports.Conversation.Start(ctx, userID, profile, review)
	if err != nil {
		logger.Warn("webhook: conversation start failed for %s: %v", userID, err)
		h.reply(w, userID, []domain.Message{{Body: review.Feedback}})
		return
	}

	h.reply(w, userID, messages)
}

// continueConversation advances an existing dialogue, or sends the help
// message when there is none.
func (h *Handler) continueConversation(ctx context.Context, w http.ResponseWriter, userID, input string) {
	if input == "" {
		h.reply(w, userID, []domain.Message{{Body: helpMessage}})
		return
	}

	messages, err := h.ports.Conversation.Continue(ctx, userID, input)
	if errors.Is(err, domain.ErrNotFound) {
		h.reply(w, userID, []domain.Message{{Body: helpMessage}})
		return
	}
	if err != nil {
		logger.Warn("webhook: conversation continue failed for %s: %v", userID, err)
		h.reply(w, userID, []domain.Message{{Body: helpMessage}})
		return
	}

	h.reply(w, userID, messages)
}

// reply delivers messages over the messenger when configured, falling
// back to inline TwiML in the webhook response.
func (h *Handler) reply(w http.ResponseWriter, userID string, messages []domain.Message) {
	if h.ports.Messenger != nil && h.ports.Messenger.Configured() {
		// Twilio retries webhooks that exceed its timeout, so respond
		// immediately and deliver out of band.
		ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
		go func() {
			defer cancel()
			if err := h.ports.Messenger.Send(ctx, userID, messages); err != nil {
				logger.Warn("webhook: send to %s failed: %v", userID, err)
			}
		}()
		writeTwiML(w, nil)
		return
	}

	bodies := make([]string, 0, len(messages))
	for _, m := range messages {
		bodies = append(bodies, m.Body)
	}
	writeTwiML(w, bodies)
}

func writeTwiML(w http.ResponseWriter, messages []string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)

	data, err := xml.Marshal(twiml{Messages: messages})
	if err != nil {
		fmt.Fprint(w, "<Response></Response>")
		return
	}
	fmt.Fprint(w, xml.Header+string(data))
}
