package mailer

// CodeTransport is reported in Result.ErrorCode when the HTTP request
// produced no response at all (DNS failure, connection refused, timeout).
// Go transport errors carry no numeric code of their own, so the
// conventional network-connect-timeout pseudo-status stands in for all of
// them; the underlying error text is preserved in Result.Message.
const CodeTransport = 599

// Result describes the outcome of a single delivery attempt. It is produced
// fresh per Send call and carries no persisted identity. Provider adapters
// return failures as data here rather than as errors so that callers always
// receive the full classification (code, message, advisory retry hint).
type Result struct {
	// Message is a human-readable description of the outcome.
	Message string

	// MessageID is the provider-assigned identifier, set on success when the
	// provider returned one.
	MessageID string

	// ErrorCode holds the HTTP status for provider rejections, 500 for local
	// encoding failures, or CodeTransport when no response was received.
	// Zero for validation failures that never reached the network.
	ErrorCode int

	// Retries suggests how many retries a higher layer might attempt.
	// Advisory output only; nothing in this module consumes it.
	Retries int

	// Success is true only when the provider accepted the message.
	Success bool

	// Sent reports whether the message was actually handed to the provider.
	Sent bool
}
