package resend

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/dmitrymomot/courier/pkg/mailer"
)

// AttachmentResolver normalizes one attachment before it goes on the wire.
// Returning an error skips the attachment; the email is still sent without
// it.
type AttachmentResolver func(att mailer.Attachment) (mailer.Attachment, error)

var (
	errNoFilename = errors.New("attachment has no filename")
	errNoContent  = errors.New("attachment has no content")
)

// ResolveAttachment is the default resolver: it requires a filename and
// content, strips any directory part from the filename, and fills a missing
// MIME type from the extension or by sniffing the content.
func ResolveAttachment(att mailer.Attachment) (mailer.Attachment, error) {
	if att.Filename == "" {
		return mailer.Attachment{}, errNoFilename
	}
	if len(att.Content) == 0 {
		return mailer.Attachment{}, errNoContent
	}

	att.Filename = filepath.Base(att.Filename)

	if att.ContentType == "" {
		att.ContentType = mime.TypeByExtension(filepath.Ext(att.Filename))
	}
	if att.ContentType == "" {
		// DetectContentType falls back to application/octet-stream itself
		att.ContentType = http.DetectContentType(att.Content)
	}

	return att, nil
}
