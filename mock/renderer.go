package mock

import webextract "github.com/JLcilliers/web-page-content-extractor"

var _ webextract.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of webextract.Renderer.
type Renderer struct {
	RenderFn    func(content *webextract.ExtractedContent) ([]byte, error)
	ExtensionFn func() string
}

func (r *Renderer) Render(content *webextract.ExtractedContent) ([]byte, error) {
	return r.RenderFn(content)
}

func (r *Renderer) Extension() string {
	if r.ExtensionFn == nil {
		return ""
	}
	return r.ExtensionFn()
}
