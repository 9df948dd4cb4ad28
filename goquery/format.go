package goquery

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// elementCategory classifies content-bearing tags into a closed set so the
// dispatch in formatElement stays exhaustive.
type elementCategory int

const (
	categoryOther elementCategory = iota
	categoryList
	categoryParagraphLike
	categoryDefinitionList
	categoryTable
)

func categorize(tag string) elementCategory {
	switch tag {
	case "ul", "ol":
		return categoryList
	case "p", "div", "section", "article", "blockquote", "caption":
		return categoryParagraphLike
	case "dl":
		return categoryDefinitionList
	case "table":
		return categoryTable
	default:
		return categoryOther
	}
}

// formatElement converts a content-bearing element into ordered, cleaned
// text fragments. List fragments keep their internal line breaks; every
// other fragment is a single cleaned line. Elements outside the known
// categories contribute nothing.
func formatElement(n *html.Node) []string {
	switch categorize(n.Data) {
	case categoryList:
		if frag := formatList(n); frag != "" {
			return []string{frag}
		}
		return nil
	case categoryParagraphLike:
		return formatParagraphLike(n)
	case categoryDefinitionList:
		return formatDefinitionList(n)
	case categoryTable:
		return formatTable(n)
	default:
		return nil
	}
}

// formatList renders a list as one fragment: each direct item becomes a
// line prefixed with a bullet glyph (unordered) or a 1-based index
// (ordered). Nested lists indent one level deeper within the same fragment.
func formatList(list *html.Node) string {
	lines := listLines(list, 0)
	return strings.Join(lines, "\n")
}

func listLines(list *html.Node, depth int) []string {
	ordered := list.Data == "ol"
	indent := strings.Repeat("  ", depth)

	var lines []string
	index := 0
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		index++

		// Item text excludes nested lists; those get their own lines.
		if text := webextract.CleanText(textWithoutLists(c)); text != "" {
			prefix := "• "
			if ordered {
				prefix = strconv.Itoa(index) + ". "
			}
			lines = append(lines, indent+prefix+text)
		}
		for _, nested := range childLists(c) {
			lines = append(lines, listLines(nested, depth+1)...)
		}
	}
	return lines
}

// formatParagraphLike renders paragraph-like containers. A container with
// nested lists emits its own text followed by each list as a separate
// fragment; a non-paragraph container with nested paragraphs emits one
// fragment per paragraph; otherwise the full cleaned text is one fragment.
func formatParagraphLike(n *html.Node) []string {
	if lists := childLists(n); len(lists) > 0 {
		var fragments []string
		if own := webextract.CleanText(textWithoutLists(n)); own != "" {
			fragments = append(fragments, own)
		}
		for _, list := range lists {
			if frag := formatList(list); frag != "" {
				fragments = append(fragments, frag)
			}
		}
		return fragments
	}

	if n.Data != "p" {
		if paragraphs := descendantParagraphs(n); len(paragraphs) > 0 {
			var fragments []string
			for _, p := range paragraphs {
				if text := webextract.CleanText(nodeText(p)); text != "" {
					fragments = append(fragments, text)
				}
			}
			return fragments
		}
	}

	if text := webextract.CleanText(nodeText(n)); text != "" {
		return []string{text}
	}
	return nil
}

// formatDefinitionList emits one fragment per term or definition, with
// terms marked by a trailing colon to keep them visually distinct.
func formatDefinitionList(dl *html.Node) []string {
	var fragments []string
	for c := dl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		text := webextract.CleanText(nodeText(c))
		if text == "" {
			continue
		}
		switch c.Data {
		case "dt":
			fragments = append(fragments, text+":")
		case "dd":
			fragments = append(fragments, "— "+text)
		}
	}
	return fragments
}

// formatTable emits one fragment per row, cells joined with " | ".
// Rows without any cell text are skipped.
func formatTable(table *html.Node) []string {
	var fragments []string
	for _, row := range descendantElements(table, "tr") {
		var cells []string
		for c := row.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
				continue
			}
			if text := webextract.CleanText(nodeText(c)); text != "" {
				cells = append(cells, text)
			}
		}
		if len(cells) > 0 {
			fragments = append(fragments, strings.Join(cells, " | "))
		}
	}
	return fragments
}

// nodeText concatenates all text under the node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return b.String()
}

// textWithoutLists concatenates the node's text, excluding any nested ul/ol
// subtrees.
func textWithoutLists(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			return
		}
		if cur.Type == html.ElementNode && (cur.Data == "ul" || cur.Data == "ol") {
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return b.String()
}

// childLists returns the topmost ul/ol descendants of the node; lists
// nested inside a returned list are reached through recursion in listLines.
func childLists(n *html.Node) []*html.Node {
	var lists []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && (cur.Data == "ul" || cur.Data == "ol") {
			lists = append(lists, cur)
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return lists
}

// descendantParagraphs returns all <p> descendants in document order.
func descendantParagraphs(n *html.Node) []*html.Node {
	return descendantElements(n, "p")
}

func descendantElements(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && cur.Data == tag {
			found = append(found, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return found
}
