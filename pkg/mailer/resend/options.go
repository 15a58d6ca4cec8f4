package resend

import (
	"log/slog"
	"net/http"
)

// Option customizes a Sender.
type Option func(*Sender)

// WithHTTPClient replaces the default HTTP client. The caller owns the
// client's timeout configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		if client != nil {
			s.client = client
		}
	}
}

// WithEndpoint overrides the send endpoint URL. Intended for tests.
func WithEndpoint(url string) Option {
	return func(s *Sender) {
		if url != "" {
			s.endpoint = url
		}
	}
}

// WithLogger attaches a structured logger. The default discards all output.
func WithLogger(log *slog.Logger) Option {
	return func(s *Sender) {
		if log != nil {
			s.log = log
		}
	}
}

// WithResolver replaces the attachment resolver.
func WithResolver(resolver AttachmentResolver) Option {
	return func(s *Sender) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}
