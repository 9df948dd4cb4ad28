package webextract

import "encoding/json"

// Renderer converts an ExtractedContent record into a final output format.
// Renderers only read the record; they impose no constraints on extraction.
type Renderer interface {
	Render(content *ExtractedContent) ([]byte, error)

	// Extension returns the file extension for this renderer (e.g. ".txt", ".pdf").
	Extension() string
}

// Ensure JSONRenderer implements Renderer at compile time.
var _ Renderer = (*JSONRenderer)(nil)

// JSONRenderer renders an ExtractedContent record as indented JSON.
type JSONRenderer struct{}

// Render marshals the record.
func (r *JSONRenderer) Render(content *ExtractedContent) ([]byte, error) {
	out, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, Errorf(EINTERNAL, "marshaling extracted content: %v", err)
	}
	return append(out, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
