package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/courier/pkg/logger"
	"github.com/dmitrymomot/courier/pkg/mailer"
	"github.com/dmitrymomot/courier/pkg/sanitizer"
)

const (
	// DefaultEndpoint is the provider's send endpoint.
	DefaultEndpoint = "https://api.resend.com/emails"

	// requestTimeout bounds the single POST performed per Send call.
	requestTimeout = 30 * time.Second

	// defaultSenderName is the display name used when the connection
	// configuration does not provide one.
	defaultSenderName = "Notifications"
)

// Sender implements mailer.Handler against the Resend HTTP API. It talks to
// the wire directly rather than through the vendor SDK: classifying
// responses the way this module needs requires the raw status code and body.
type Sender struct {
	client   *http.Client
	log      *slog.Logger
	resolver AttachmentResolver
	endpoint string
	config   Config
}

// New creates a new Resend sender.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{
		client:   &http.Client{Timeout: requestTimeout},
		log:      logger.NewNope(),
		resolver: ResolveAttachment,
		endpoint: DefaultEndpoint,
		config:   cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authenticate implements mailer.Handler. The provider has no credential
// check endpoint, so this always succeeds; a bad key surfaces as a 401 on
// the first real send.
func (s *Sender) Authenticate(ctx context.Context) error {
	return nil
}

// Headers implements mailer.Handler: bearer authorization plus the JSON
// content type. The key is treated as opaque text and only normalized to a
// single header-safe line.
func (s *Sender) Headers(apiKey string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + sanitizer.SingleLine(apiKey),
		"Content-Type":  "application/json",
	}
}

// Send implements mailer.Handler. The pipeline is a single linear
// validate → build → post → classify pass with early exits; every failure
// mode is returned as data in the Result and nothing escapes as an error.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) mailer.Result {
	from, ok := sanitizer.Email(s.config.SenderEmail)
	if !ok {
		return mailer.Result{Message: "Invalid or missing from email address"}
	}

	p := payload{
		From:    senderAddress(s.config.SenderName, from),
		Subject: email.Subject,
		To:      validAddresses(email.To),
		Headers: email.Headers,
	}
	if len(p.To) == 0 {
		return mailer.Result{Message: "No valid recipient email addresses provided"}
	}

	// First valid reply-to entry only; the provider accepts a single value.
	if replyTo := validAddresses(email.ReplyTo); len(replyTo) > 0 {
		p.ReplyTo = replyTo[0]
	}

	// The plain-text alternative is mandatory for provider compatibility:
	// HTML-only mail gets a tag-stripped rendition.
	if email.HTML != "" {
		p.HTML = email.HTML
		p.Text = email.Text
		if p.Text == "" {
			p.Text = sanitizer.StripHTML(email.HTML)
		}
	} else {
		p.Text = email.Text
	}

	p.CC = validAddresses(email.CC)
	p.BCC = validAddresses(email.BCC)
	p.Tags = convertTags(email.Tags)
	p.Attachments = s.resolveAttachments(email.Attachments)

	body, err := json.Marshal(p)
	if err != nil {
		return encodingFailure(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return encodingFailure(err)
	}
	for name, value := range s.Headers(s.config.APIKey) {
		req.Header.Set(name, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("email transport failure",
			slog.String("endpoint", s.endpoint),
			slog.String("error", err.Error()))
		return mailer.Result{
			Message:   fmt.Sprintf("Email sending failed: %v", err),
			ErrorCode: mailer.CodeTransport,
		}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		id := extractMessageID(respBody)
		s.log.Info("email sent",
			slog.String("message_id", id),
			slog.Int("recipients", len(p.To)))
		return mailer.Result{
			Success:   true,
			Sent:      true,
			Message:   "sent",
			MessageID: id,
		}
	}

	msg := extractErrorMessage(respBody, resp.StatusCode)
	s.log.Warn("email rejected by provider",
		slog.Int("status", resp.StatusCode),
		slog.String("error", msg))
	return mailer.Result{
		Message:   fmt.Sprintf("Email sending failed: %s", msg),
		ErrorCode: resp.StatusCode,
		Retries:   1,
	}
}

// encodingFailure classifies a local failure before any bytes were sent.
func encodingFailure(err error) mailer.Result {
	return mailer.Result{
		Message:   fmt.Sprintf("Email sending failed: %v", err),
		ErrorCode: http.StatusInternalServerError,
		Retries:   1,
	}
}

// senderAddress resolves the sender display name, falling back to the
// default, and formats the mailbox in RFC 5322 form.
func senderAddress(name, email string) string {
	if name == "" {
		name = defaultSenderName
	}
	return mailer.Recipient(name, email)
}

// validAddresses filters a recipient list down to syntactically valid
// entries, formatted for the wire. Returns nil when nothing survives so the
// field is omitted from the payload.
func validAddresses(addrs []mailer.Address) []string {
	var out []string
	for _, a := range addrs {
		email, ok := sanitizer.Email(a.Email)
		if !ok {
			continue
		}
		out = append(out, mailer.Recipient(sanitizer.SingleLine(a.Name), email))
	}
	return out
}

// resolveAttachments runs every attachment through the resolver and skips
// the ones it rejects.
func (s *Sender) resolveAttachments(atts []mailer.Attachment) []attachment {
	var out []attachment
	for _, a := range atts {
		resolved, err := s.resolver(a)
		if err != nil {
			s.log.Warn("skipping attachment",
				slog.String("filename", a.Filename),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, attachment{
			Filename:    resolved.Filename,
			ContentType: resolved.ContentType,
			ContentID:   resolved.ContentID,
			Content:     resolved.Content,
		})
	}
	return out
}
