// Package mailer provides a universal email sending interface with template rendering.
//
// The package separates email delivery (via provider handlers) from template
// rendering, allowing easy swapping of providers while keeping the same
// template system.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Handler: Interface that provider adapters implement
//   - Renderer: Converts markdown templates with YAML frontmatter to HTML
//   - Mailer: High-level client combining Handler and Renderer
//
// # Usage
//
// Basic usage with the built-in Resend adapter:
//
//	import (
//		"context"
//		"os"
//
//		"github.com/dmitrymomot/courier/pkg/mailer"
//		"github.com/dmitrymomot/courier/pkg/mailer/resend"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		// Create the provider handler
//		handler := resend.New(resend.Config{
//			APIKey:      os.Getenv("RESEND_API_KEY"),
//			SenderEmail: "team@example.com",
//			SenderName:  "Team",
//		})
//
//		// Create the renderer with embedded templates
//		renderer := mailer.NewRenderer(emails.FS)
//
//		// Create the mailer
//		m := mailer.New(handler, renderer, mailer.Config{
//			FallbackSubject: "Notification",
//			DefaultLayout:   "base.html",
//		})
//
//		// Send templated email
//		result, err := m.Send(ctx, mailer.SendParams{
//			To:       "user@example.com",
//			Template: "welcome.md",
//			Data:     map[string]any{"Name": "John"},
//		})
//		if err != nil {
//			panic(err)
//		}
//		_ = result.MessageID
//	}
//
// # Delivery Results
//
// Handlers classify every delivery attempt into a Result record instead of
// returning errors: validation failures, transport failures, and provider
// rejections all come back as data (Success, ErrorCode, Message, advisory
// Retries). The Mailer additionally wraps rejected deliveries in
// ErrSendFailed for callers that prefer error checks.
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Welcome {{.Name}}!
//	---
//
//	# Welcome
//
//	Hello {{.Name}}, welcome to our service!
//
//	[!button|Get Started]({{.URL}})
//
// Subject fields support Go template syntax ({{.Variable}}) for dynamic subjects.
//
// # Sending Emails
//
// Mailer provides two methods for sending emails:
//
//   - Send: Renders a template and sends the email
//   - SendRaw: Sends a pre-built Email without rendering
//
// # Configuration Schema
//
// SharedFields returns static UI-schema metadata describing the connection
// fields every provider shares (title, from_email, from_name, priority);
// each adapter package exposes its own Fields function for
// provider-specific inputs such as credentials.
//
// # Custom Providers
//
// Implement the Handler interface to add support for other email providers:
//
//	type MyHandler struct{}
//
//	func (h *MyHandler) Authenticate(ctx context.Context) error { return nil }
//
//	func (h *MyHandler) Send(ctx context.Context, email *mailer.Email) mailer.Result {
//		// Deliver via your provider's API and classify the outcome.
//		return mailer.Result{Success: true, Sent: true, Message: "sent"}
//	}
//
//	func (h *MyHandler) Headers(apiKey string) map[string]string {
//		return map[string]string{"Authorization": "Bearer " + apiKey}
//	}
package mailer
