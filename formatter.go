package webextract

import "strings"

// Ensure TextRenderer implements Renderer at compile time.
var _ Renderer = (*TextRenderer)(nil)

// FormatContent formats an extraction record for display.
// Uses the meta title if available, falls back to the source URL.
// Headings are indented by level with their content beneath them; fallback
// content is labeled with the strategy that produced it.
func FormatContent(c *ExtractedContent) string {
	var b strings.Builder

	header := c.MetaTitle
	if header == "" {
		header = c.URL
	}
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("=", len(header)) + "\n")
	if c.MetaDescription != "" {
		b.WriteString(c.MetaDescription + "\n")
	}
	if c.MetaTitle != "" && c.URL != "" {
		b.WriteString("Source: " + c.URL + "\n")
	}

	for _, h := range c.Headings {
		indent := strings.Repeat("  ", h.Level-1)
		b.WriteString("\n" + indent + h.Text + "\n")
		for _, frag := range h.Content {
			for _, line := range strings.Split(frag, "\n") {
				b.WriteString(indent + "  " + line + "\n")
			}
		}
	}

	if c.Fallback != nil {
		b.WriteString("\nContent (" + string(c.Fallback.Source) + "):\n")
		b.WriteString(c.Fallback.Text + "\n")
	}

	return b.String()
}

// TextRenderer renders an ExtractedContent record as plain text.
type TextRenderer struct{}

// Render formats the record via FormatContent.
func (r *TextRenderer) Render(content *ExtractedContent) ([]byte, error) {
	return []byte(FormatContent(content)), nil
}

// Extension returns the file extension for plain text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
