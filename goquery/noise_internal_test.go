package goquery

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

func TestRemoveNoiseIdempotent(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<nav><a href="/">Home</a></nav>
<div class="advertisement">Buy things</div>
<div class="cookie-banner">We use cookies</div>
<div id="main-content"><h1>Kept</h1><p>Body text.</p></div>
<p style="display:none">invisible</p>
<footer>footer</footer>
</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	h := webextract.DefaultHeuristics()

	removeNoise(doc, h)
	afterFirst := doc.Find("*").Length()

	removeNoise(doc, h)
	afterSecond := doc.Find("*").Length()

	assert.Equal(t, afterFirst, afterSecond, "second pass must remove nothing")
	assert.Positive(t, afterFirst)
	assert.Equal(t, 1, doc.Find("#main-content").Length())
}
