package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate_WithFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte(`---
Subject: Welcome Email
Author: System
---
# Hello World

This is the email body.
`)

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.NotNil(t, tmpl)
	require.Equal(t, "Welcome Email", tmpl.Metadata["Subject"])
	require.Equal(t, "System", tmpl.Metadata["Author"])
	require.Equal(t, "# Hello World\n\nThis is the email body.\n", tmpl.Body)
}

func TestParseTemplate_WithoutFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte(`# Hello World

This is just plain markdown.`)

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.NotNil(t, tmpl)
	require.Empty(t, tmpl.Metadata)
	require.Equal(t, string(content), tmpl.Body)
}

func TestParseTemplate_WhitespaceFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte(`---

---
Body content.`)

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.NotNil(t, tmpl)
	require.Empty(t, tmpl.Metadata)
	require.Equal(t, "Body content.", tmpl.Body)
}

func TestParseTemplate_MissingClosingDelimiter(t *testing.T) {
	t.Parallel()

	content := []byte(`---
Subject: Test
Body without closing delimiter`)

	tmpl, err := ParseTemplate(content)
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
	require.Nil(t, tmpl)
}

func TestParseTemplate_NoContentAfterOpening(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte(`---`))
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
	require.Nil(t, tmpl)
}

func TestParseTemplate_InvalidYAML(t *testing.T) {
	t.Parallel()

	content := []byte(`---
Subject: Test
InvalidYAML: [unclosed
---
Body`)

	tmpl, err := ParseTemplate(content)
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
	require.Nil(t, tmpl)
}

func TestParseTemplate_CRLFBody(t *testing.T) {
	t.Parallel()

	content := []byte("---\r\nSubject: Test\r\n---\r\nBody line.")

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)
	require.Equal(t, "Test", tmpl.Metadata["Subject"])
	require.Equal(t, "Body line.", tmpl.Body)
}
