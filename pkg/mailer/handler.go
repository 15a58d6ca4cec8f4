package mailer

import "context"

// Handler is the contract provider adapters implement. Adapters are
// constructed with their connection configuration (API key, sender identity)
// and translate the generic Email into the provider's wire format.
type Handler interface {
	// Authenticate reports whether the adapter's credentials are usable.
	// Adapters whose provider has no credential-check endpoint return nil
	// and let the key be validated implicitly on the first real send.
	Authenticate(ctx context.Context) error

	// Send delivers one email and classifies the outcome. All failures are
	// returned as data in the Result; Send never panics and never returns
	// delivery problems as errors.
	Send(ctx context.Context, email *Email) Result

	// Headers builds the authentication headers the adapter attaches to
	// provider API requests for the given key.
	Headers(apiKey string) map[string]string
}
