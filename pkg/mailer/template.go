package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template represents an email template with metadata and body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// frontmatterDelim separates YAML frontmatter from the markdown body.
var frontmatterDelim = []byte("---")

// ParseTemplate splits template file content into YAML frontmatter metadata
// and a markdown body. Content without a leading delimiter is treated as a
// body with empty metadata.
func ParseTemplate(content []byte) (*Template, error) {
	rest, hasFrontmatter := bytes.CutPrefix(content, frontmatterDelim)
	if !hasFrontmatter {
		return &Template{
			Metadata: make(map[string]any),
			Body:     string(content),
		}, nil
	}

	rest = bytes.TrimLeft(rest, "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	frontmatter, body, closed := bytes.Cut(rest, frontmatterDelim)
	if !closed {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	// Drop a single newline following the closing delimiter
	if b, ok := bytes.CutPrefix(body, []byte("\r\n")); ok {
		body = b
	} else if b, ok := bytes.CutPrefix(body, []byte("\n")); ok {
		body = b
	}

	metadata := make(map[string]any)
	if len(bytes.TrimSpace(frontmatter)) > 0 {
		if err := yaml.Unmarshal(frontmatter, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{
		Metadata: metadata,
		Body:     string(body),
	}, nil
}
