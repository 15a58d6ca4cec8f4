package resend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/courier/pkg/mailer"
)

func TestResolveAttachment(t *testing.T) {
	t.Parallel()

	t.Run("fills content type from extension", func(t *testing.T) {
		t.Parallel()
		att, err := ResolveAttachment(mailer.Attachment{
			Filename: "report.pdf",
			Content:  []byte("%PDF-1.4"),
		})
		require.NoError(t, err)
		require.Equal(t, "application/pdf", att.ContentType)
	})

	t.Run("keeps explicit content type", func(t *testing.T) {
		t.Parallel()
		att, err := ResolveAttachment(mailer.Attachment{
			Filename:    "data.bin",
			ContentType: "application/x-custom",
			Content:     []byte{0x01},
		})
		require.NoError(t, err)
		require.Equal(t, "application/x-custom", att.ContentType)
	})

	t.Run("sniffs content for unknown extension", func(t *testing.T) {
		t.Parallel()
		att, err := ResolveAttachment(mailer.Attachment{
			Filename: "blob.unknownext",
			Content:  []byte{0x00, 0x01, 0x02, 0x03},
		})
		require.NoError(t, err)
		require.NotEmpty(t, att.ContentType)
	})

	t.Run("strips directory from filename", func(t *testing.T) {
		t.Parallel()
		att, err := ResolveAttachment(mailer.Attachment{
			Filename: "/tmp/uploads/report.txt",
			Content:  []byte("hello"),
		})
		require.NoError(t, err)
		require.Equal(t, "report.txt", att.Filename)
	})

	t.Run("rejects missing filename", func(t *testing.T) {
		t.Parallel()
		_, err := ResolveAttachment(mailer.Attachment{Content: []byte("x")})
		require.Error(t, err)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		_, err := ResolveAttachment(mailer.Attachment{Filename: "x.txt"})
		require.Error(t, err)
	})
}
