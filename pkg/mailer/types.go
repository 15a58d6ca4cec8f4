package mailer

import "fmt"

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
// Providers that only accept name-value pairs render presence-only tags as
// name="true".
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
// These are converted to the appropriate format by each provider adapter.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Address is a single mailbox with an optional display name.
type Address struct {
	Email string // mailbox address, e.g. "alice@example.com"
	Name  string // optional display name
}

// String formats the address in RFC 5322 form.
func (a Address) String() string {
	return Recipient(a.Name, a.Email)
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if a distinct name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" || name == email {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for handing to a
// provider adapter. A message is HTML when HTML is non-empty; Text is the
// plain alternative and may be left empty for HTML mail, in which case the
// adapter derives a tag-stripped fallback.
type Email struct {
	Headers     map[string]string // Custom headers
	Tags        Tags              // Provider-specific tags/categories
	Subject     string            // Email subject
	HTML        string            // HTML body content (empty for plain-text mail)
	Text        string            // Plain text body or alternative
	To          []Address         // Recipients (at least one required)
	CC          []Address         // Carbon copy recipients
	BCC         []Address         // Blind carbon copy recipients
	ReplyTo     []Address         // Reply-to candidates; adapters use the first valid entry
	Attachments []Attachment      // File attachments
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
}
