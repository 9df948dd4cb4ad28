package webextract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

func TestFormatContent(t *testing.T) {
	t.Parallel()

	t.Run("renders heading hierarchy with indented content", func(t *testing.T) {
		t.Parallel()

		c := &webextract.ExtractedContent{
			URL:       "https://example.com/page",
			MetaTitle: "Example Page",
			Headings: []webextract.Heading{
				{Level: 1, Text: "Overview", Content: []string{"First paragraph."}},
				{Level: 2, Text: "Details", Content: []string{"• one\n• two"}},
			},
		}

		out := webextract.FormatContent(c)

		assert.Contains(t, out, "Example Page\n")
		assert.Contains(t, out, "Source: https://example.com/page\n")
		assert.Contains(t, out, "\nOverview\n  First paragraph.\n")
		// Level-2 heading and its list lines are indented one level deeper.
		assert.Contains(t, out, "\n  Details\n    • one\n    • two\n")
	})

	t.Run("falls back to URL when title is missing", func(t *testing.T) {
		t.Parallel()

		c := &webextract.ExtractedContent{URL: "https://example.com"}
		out := webextract.FormatContent(c)
		assert.True(t, strings.HasPrefix(out, "https://example.com\n"))
	})

	t.Run("labels fallback content with its source", func(t *testing.T) {
		t.Parallel()

		c := &webextract.ExtractedContent{
			URL: "https://example.com",
			Fallback: &webextract.FallbackContent{
				Source: webextract.SourceParagraphs,
				Text:   "para one\n\npara two",
			},
		}

		out := webextract.FormatContent(c)
		assert.Contains(t, out, "Content (paragraphs):\npara one\n\npara two\n")
	})
}

func TestTextRenderer(t *testing.T) {
	t.Parallel()

	r := &webextract.TextRenderer{}
	assert.Equal(t, ".txt", r.Extension())

	out, err := r.Render(&webextract.ExtractedContent{URL: "https://example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	r := &webextract.JSONRenderer{}
	assert.Equal(t, ".json", r.Extension())

	c := &webextract.ExtractedContent{
		URL:       "https://example.com",
		MetaTitle: "Example",
		Headings: []webextract.Heading{
			{Level: 1, Text: "Overview", Content: []string{"text"}},
		},
	}

	out, err := r.Render(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"metaTitle": "Example"`)
	assert.Contains(t, string(out), `"level": 1`)
}
