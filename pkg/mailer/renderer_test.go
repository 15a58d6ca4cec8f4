package mailer

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

// countingFS wraps MapFS and counts ReadFile calls.
type countingFS struct {
	fstest.MapFS
	reads *atomic.Int32
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads.Add(1)
	return c.MapFS.ReadFile(name)
}

func TestRenderer_Render_PlainText(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"welcome.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Welcome {{.Name}}
---
Hello **{{.Name}}**!

Welcome to our service.
`),
		},
	}

	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})

	result, err := renderer.Render("default.html", "welcome.md", map[string]string{"Name": "Alice"})
	require.NoError(t, err)

	// Text holds the processed markdown, not HTML
	require.Contains(t, result.Text, "Hello **Alice**!")
	require.Contains(t, result.Text, "Welcome to our service.")
	require.NotContains(t, result.Text, "<strong>")

	// HTML holds the rendered page
	require.Contains(t, result.HTML, "<strong>Alice</strong>")
	require.Contains(t, result.HTML, "<body>")

	require.Equal(t, "Welcome {{.Name}}", result.Metadata["Subject"])
}

func TestRenderer_Render_CachesParsedFiles(t *testing.T) {
	t.Parallel()

	var reads atomic.Int32
	cfs := &countingFS{
		MapFS: fstest.MapFS{
			"layouts/default.html": &fstest.MapFile{
				Data: []byte(`<html>{{.Content}}</html>`),
			},
			"email.md": &fstest.MapFile{
				Data: []byte(`---
Subject: Test
---
Hello {{.Name}}
`),
			},
		},
		reads: &reads,
	}

	renderer := NewRendererWithConfig(cfs, RendererConfig{LayoutDir: "layouts"})

	// First render reads template + layout
	_, err := renderer.Render("default.html", "email.md", map[string]string{"Name": "Alice"})
	require.NoError(t, err)
	require.Equal(t, int32(2), reads.Load())

	// Second render hits the cache
	_, err = renderer.Render("default.html", "email.md", map[string]string{"Name": "Bob"})
	require.NoError(t, err)
	require.Equal(t, int32(2), reads.Load())

	// A new layout triggers exactly one more read
	cfs.MapFS["layouts/other.html"] = &fstest.MapFile{
		Data: []byte(`<div>{{.Content}}</div>`),
	}
	_, err = renderer.Render("other.html", "email.md", map[string]string{"Name": "Carol"})
	require.NoError(t, err)
	require.Equal(t, int32(3), reads.Load())
}

func TestRenderer_Render_DifferentDataProducesDifferentOutput(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html>{{.Content}}</html>`),
		},
		"greeting.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Hello
---
Welcome {{.Name}}!
`),
		},
	}

	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})

	result1, err := renderer.Render("default.html", "greeting.md", map[string]string{"Name": "Alice"})
	require.NoError(t, err)

	result2, err := renderer.Render("default.html", "greeting.md", map[string]string{"Name": "Bob"})
	require.NoError(t, err)

	require.Contains(t, result1.Text, "Welcome Alice!")
	require.Contains(t, result2.Text, "Welcome Bob!")
	require.NotEqual(t, result1.HTML, result2.HTML)
}

func TestRenderer_Render_MissingTemplate(t *testing.T) {
	t.Parallel()

	renderer := NewRenderer(fstest.MapFS{})

	_, err := renderer.Render("base.html", "missing.md", nil)
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRenderer_Render_MissingLayout(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"email.md": &fstest.MapFile{Data: []byte(`Hello`)},
	}
	renderer := NewRenderer(fs)

	_, err := renderer.Render("missing.html", "email.md", nil)
	require.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestRenderer_Render_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html>{{.Content}}</html>`),
		},
		"email.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Test
---
Hello {{.ID}}
`),
		},
	}

	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})

	var wg sync.WaitGroup
	failures := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			result, err := renderer.Render("default.html", "email.md", map[string]int{"ID": id})
			if err != nil {
				failures <- err
				return
			}
			if result.Text == "" || result.HTML == "" {
				failures <- ErrRenderFailed
			}
		}(i)
	}

	wg.Wait()
	close(failures)

	for err := range failures {
		t.Errorf("concurrent render failed: %v", err)
	}
}
