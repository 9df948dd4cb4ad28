package webextract

// Heuristics holds the configuration data that drives the extraction
// engine: noise selectors, container priorities, wrapper conventions, and
// phrase lists. The lists are plain data rather than behavior so tests can
// substitute smaller fixtures.
type Heuristics struct {
	// NoiseTags are tag and ARIA-role selectors removed unconditionally
	// before content analysis.
	NoiseTags []string

	// NoiseSelectors are class/id selectors for ads, cookie banners, social
	// widgets, pagination, comments, and CMS chrome. Entries that fail to
	// parse as CSS selectors are skipped, never fatal.
	NoiseSelectors []string

	// NoiseSubstrings flag an element for removal when its class or id
	// contains the substring, unless ContentGuard also matches.
	NoiseSubstrings []string

	// ContentGuard protects an element from substring-based removal when
	// its class or id contains it.
	ContentGuard string

	// ContainerSelectors is the Phase A priority list of semantic content
	// containers. Earlier entries take precedence over later ones.
	ContainerSelectors []string

	// HeadingWrapperPatterns are class substrings that mark an element as a
	// heading wrapper, so section traversal starts from the wrapper rather
	// than the bare heading.
	HeadingWrapperPatterns []string

	// NoiseHeadings are cleaned, lowercased heading texts discarded during
	// section extraction (chrome headings like "Contents" or "Menu").
	NoiseHeadings []string

	// ArticleSelectors locate article-like blocks for the first fallback
	// extraction tier.
	ArticleSelectors []string

	// NavigationPhrases are lowercased texts excluded from the text-block
	// fallback tier.
	NavigationPhrases []string
}

// DefaultHeuristics returns the heuristics used in production.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		NoiseTags: []string{
			"script", "style", "noscript", "template", "iframe",
			"nav", "header", "footer", "aside", "form", "button",
			"[role='navigation']", "[role='banner']",
			"[role='complementary']", "[role='search']",
		},
		NoiseSelectors: []string{
			".ads", ".advertisement", ".ad-container", "[id*='google_ads']",
			".cookie-banner", ".cookie-notice", "#cookie-consent",
			".social-share", ".share-buttons", ".social-links",
			".pagination", ".pager", ".breadcrumb", ".breadcrumbs",
			"#comments", ".comments", ".comment-section",
			".newsletter-signup", ".subscribe-box",
			".mw-editsection", ".mw-jump-link", "#toc", ".toc", ".navbox",
			".catlinks", ".printfooter", ".sister-project",
		},
		NoiseSubstrings: []string{
			"footer", "nav", "menu", "sidebar", "widget", "advertisement",
			"social", "share", "comment", "related", "promo", "newsletter",
			"subscribe", "cookie", "consent",
		},
		ContentGuard: "content",
		ContainerSelectors: []string{
			"main",
			"[role='main']",
			"article",
			"#mw-content-text",
			"#content",
			".content",
			"#main-content",
			".main-content",
			".post-content",
			".entry-content",
			".article-body",
			".story-body",
		},
		HeadingWrapperPatterns: []string{
			"mw-heading",
			"heading-wrapper",
		},
		NoiseHeadings: []string{
			"edit", "contents", "menu", "navigation", "navigation menu",
			"search", "languages", "in other languages", "personal tools",
			"namespaces", "views", "tools", "print/export",
		},
		ArticleSelectors: []string{
			"article",
			"[class*='article']",
			"[class*='post']",
			"[class*='entry']",
			"[class*='story']",
			"[class*='item']",
		},
		NavigationPhrases: []string{
			"home", "about", "contact", "login", "log in", "sign in",
			"sign up", "register", "search", "previous", "prev", "next",
			"more", "less", "show", "hide", "menu", "skip to content",
		},
	}
}
