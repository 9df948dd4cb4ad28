// Package webextract provides a heuristic content-extraction engine that
// turns an arbitrary HTML document into a structured summary: page metadata,
// a hierarchy of headings (levels 1-4) paired with their body text, or a
// best-effort fallback extraction when no usable heading structure exists.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, gofpdf/).
package webextract
