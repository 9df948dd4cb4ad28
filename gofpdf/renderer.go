// Package gofpdf renders extraction records as PDF documents.
// Headings get level-scaled fonts, list fragments keep their line breaks,
// and sections are separated by a divider rule.
package gofpdf

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// Ensure Renderer implements webextract.Renderer at compile time.
var _ webextract.Renderer = (*Renderer)(nil)

// headingFontSizes maps heading levels to font sizes in points.
var headingFontSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12}

// Renderer renders an ExtractedContent record as a PDF document.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the PDF bytes for the record.
func (r *Renderer) Render(content *webextract.ExtractedContent) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	title := content.MetaTitle
	if title == "" {
		title = content.URL
	}
	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 9, title, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+content.URL, "", "L", false)
	if content.MetaDescription != "" {
		pdf.MultiCell(0, 5, content.MetaDescription, "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	for _, heading := range content.Headings {
		renderHeading(pdf, heading)
	}

	if content.Fallback != nil {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Content (source: "+string(content.Fallback.Source)+")", "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range strings.Split(content.Fallback.Text, "\n") {
			if strings.TrimSpace(line) == "" {
				pdf.Ln(3)
				continue
			}
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, webextract.Errorf(webextract.EINTERNAL, "writing PDF: %v", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *Renderer) Extension() string {
	return ".pdf"
}

// renderHeading writes one heading with its content fragments, followed by
// a divider rule.
func renderHeading(pdf *gofpdf.Fpdf, heading webextract.Heading) {
	size, ok := headingFontSizes[heading.Level]
	if !ok {
		size = 10
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, heading.Text, "", "L", false)
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 10)
	for _, frag := range heading.Content {
		// Bullet and numbered list fragments carry internal newlines that
		// must be reproduced verbatim.
		for _, line := range strings.Split(frag, "\n") {
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
		pdf.Ln(2)
	}

	// Section divider.
	pdf.SetDrawColor(200, 200, 200)
	x, y := pdf.GetXY()
	pageWidth, _ := pdf.GetPageSize()
	_, _, rightMargin, _ := pdf.GetMargins()
	pdf.Line(x, y, pageWidth-rightMargin, y)
	pdf.Ln(3)
}
