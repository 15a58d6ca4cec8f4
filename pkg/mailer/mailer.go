package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Mailer provides high-level email sending with template rendering.
type Mailer struct {
	handler  Handler
	renderer *Renderer
	config   Config
}

// New creates a new Mailer with the given provider handler and renderer.
func New(handler Handler, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		handler:  handler,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       string // Single recipient (most common case)
	ToName   string // Optional recipient display name
	Template string // Template filename (e.g., "welcome.md")
	Data     any    // Template data

	// Optional overrides
	Subject     string       // Override template subject
	Layout      string       // Override default layout
	ReplyTo     string       // Reply-to address
	CC          []Address    // Carbon copy
	BCC         []Address    // Blind carbon copy
	Tags        Tags         // Provider tags/categories
	Attachments []Attachment // File attachments
}

// Send renders a template and hands the email to the provider handler.
// Subject resolution: params.Subject > template metadata > config fallback.
// Local failures (missing recipient, render errors) come back as errors;
// the delivery outcome is the Result, and a rejected delivery additionally
// wraps ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, params SendParams) (Result, error) {
	if params.To == "" {
		return Result{}, ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	rendered, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return Result{}, errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if fromMeta, ok := rendered.Metadata["Subject"].(string); ok {
			subject = fromMeta
		} else {
			subject = m.config.FallbackSubject
		}
	}

	// Process subject as template (supports {{.Variable}} syntax)
	subject, err = m.processSubject(subject, params.Data)
	if err != nil {
		return Result{}, errors.Join(ErrRenderFailed, err)
	}

	email := &Email{
		To:          []Address{{Email: params.To, Name: params.ToName}},
		Subject:     subject,
		HTML:        rendered.HTML,
		Text:        rendered.Text,
		CC:          params.CC,
		BCC:         params.BCC,
		Tags:        params.Tags,
		Attachments: params.Attachments,
	}
	if params.ReplyTo != "" {
		email.ReplyTo = []Address{{Email: params.ReplyTo}}
	}

	return m.deliver(ctx, email)
}

// SendRaw sends a pre-built email without template rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) (Result, error) {
	if len(email.To) == 0 {
		return Result{}, ErrNoRecipient
	}
	if email.Subject == "" {
		return Result{}, ErrNoSubject
	}
	if email.HTML == "" && email.Text == "" {
		return Result{}, ErrNoContent
	}

	return m.deliver(ctx, email)
}

func (m *Mailer) deliver(ctx context.Context, email *Email) (Result, error) {
	result := m.handler.Send(ctx, email)
	if !result.Success {
		return result, errors.Join(ErrSendFailed, errors.New(result.Message))
	}
	return result, nil
}

func (m *Mailer) processSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
