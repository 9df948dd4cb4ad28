package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	webextract "github.com/JLcilliers/web-page-content-extractor"
	"github.com/JLcilliers/web-page-content-extractor/gofpdf"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	renderer, err := c.renderer()
	if err != nil {
		return err
	}

	// PDF bytes can't go to stdout usefully; insist on an output directory.
	if c.Format == "pdf" && c.Output == "" {
		return webextract.Errorf(webextract.EINVALID, "--output directory required for pdf format")
	}

	results, err := deps.Runner.Run(deps.Ctx, c.URLs, nil)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", result.URL, webextract.ErrorMessage(result.Err))
			continue
		}

		out, err := renderer.Render(result.Content)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", result.URL, webextract.ErrorMessage(err))
			continue
		}

		if c.Output == "" {
			if _, err := deps.Stdout.Write(out); err != nil {
				return err
			}
			continue
		}

		path := filepath.Join(c.Output, urlSlug(result.URL)+renderer.Extension())
		if err := os.MkdirAll(c.Output, 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, out, 0644); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "wrote %s\n", path)
	}

	if failed == len(results) && failed > 0 {
		return webextract.Errorf(webextract.EUNAVAILABLE, "all %d URLs failed", failed)
	}
	return nil
}

func (c *ExtractCmd) renderer() (webextract.Renderer, error) {
	switch c.Format {
	case "text":
		return &webextract.TextRenderer{}, nil
	case "json":
		return &webextract.JSONRenderer{}, nil
	case "pdf":
		return gofpdf.NewRenderer(), nil
	default:
		return nil, webextract.Errorf(webextract.EINVALID, "unknown format %q", c.Format)
	}
}

// urlSlug derives a filesystem-safe name from a URL.
func urlSlug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "page"
	}
	slug := u.Host + strings.ReplaceAll(u.Path, "/", "-")
	slug = strings.Trim(slug, "-")
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, slug)
	if slug == "" {
		return "page"
	}
	return slug
}
