package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/bodymd"
	"github.com/fwojciec/bodymd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements bodymd.Extractor at compile time.
var _ bodymd.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts body from full document", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Hi</h1></body></html>`

		e := goquery.NewExtractor()
		frag, err := e.Extract(html)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(frag.BodyHTML, "<body"))
		assert.True(t, strings.HasSuffix(frag.BodyHTML, "</body>"))
		assert.Contains(t, frag.BodyHTML, "<h1>Hi</h1>")
	})

	t.Run("extracted fragment round-trips structurally", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Ops</title></head><body>
<h1>Operators</h1>
<table><tr><td>a + b</td><td>plus</td></tr></table>
<p>See <a href="#notes">notes</a>.</p>
</body></html>`

		e := goquery.NewExtractor()
		frag, err := e.Extract(html)
		require.NoError(t, err)

		equal, err := goquery.StructurallyEqual(html, frag.BodyHTML)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("extracts title from head", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>  My Page  </title></head><body><p>x</p></body></html>`

		e := goquery.NewExtractor()
		frag, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "My Page", frag.Title)
	})

	t.Run("title is empty when head has none", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		frag, err := e.Extract(`<body><p>x</p></body>`)

		require.NoError(t, err)
		assert.Empty(t, frag.Title)
	})

	t.Run("accepts explicit body without html wrapper", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		frag, err := e.Extract(`<body><p>bare</p></body>`)

		require.NoError(t, err)
		assert.Contains(t, frag.BodyHTML, "<p>bare</p>")
	})

	t.Run("preserves attributes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body class="main" data-x="1"><div id="top">hi</div></body></html>`

		e := goquery.NewExtractor()
		frag, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, frag.BodyHTML, `class="main"`)
		assert.Contains(t, frag.BodyHTML, `data-x="1"`)
		assert.Contains(t, frag.BodyHTML, `id="top"`)
	})

	t.Run("recovers malformed markup", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		frag, err := e.Extract(`<body><p>unclosed<ul><li>item`)

		require.NoError(t, err)
		assert.Contains(t, frag.BodyHTML, "unclosed")
		assert.Contains(t, frag.BodyHTML, "<li>item</li>")
	})

	t.Run("fails on head-only document", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract(`<html><head><title>x</title></head></html>`)

		require.Error(t, err)
		assert.Equal(t, bodymd.EINVALID, bodymd.ErrorCode(err))
		assert.Contains(t, bodymd.ErrorMessage(err), "no <body>")
	})

	t.Run("fails on document without body tag", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract(`<h1>Hi</h1>`)

		require.Error(t, err)
		assert.Equal(t, bodymd.EINVALID, bodymd.ErrorCode(err))
		assert.Contains(t, bodymd.ErrorMessage(err), "no <body>")
	})

	t.Run("fails on multiple body elements", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract(`<html><body><p>one</p></body><body><p>two</p></body></html>`)

		require.Error(t, err)
		assert.Equal(t, bodymd.EINVALID, bodymd.ErrorCode(err))
		assert.Contains(t, bodymd.ErrorMessage(err), "multiple <body>")
	})

	t.Run("ignores body tag inside a comment", func(t *testing.T) {
		t.Parallel()

		html := `<!-- <body>not real</body> --><body><p>real</p></body>`

		e := goquery.NewExtractor()
		frag, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, frag.BodyHTML, "<p>real</p>")
	})

	t.Run("ignores body tag inside script raw text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><script>document.write("<body>");</script></body></html>`

		e := goquery.NewExtractor()
		frag, err := e.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, frag.BodyHTML, "<script>")
	})

	t.Run("fails on empty input", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.Extract("   ")

		require.Error(t, err)
		assert.Equal(t, bodymd.EINVALID, bodymd.ErrorCode(err))
	})
}
