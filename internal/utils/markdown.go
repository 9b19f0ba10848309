package utils

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	policy       = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func init() {
	// Allow images
	policy.AllowImages()
	// Force links to open in new tab
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	// Add rel="noreferrer" on outbound links
	policy.RequireNoReferrerOnLinks(true)
}

// RenderMarkdown converts news/article markdown to sanitized HTML ready to
// embed in API responses.
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return SanitizeHTML(source) // Fallback
	}

	// Sanitize HTML
	sanitized := policy.SanitizeBytes(buf.Bytes())

	// Enhance Image Attributes
	return EnhanceHTMLContent(string(sanitized))
}

// SanitizeHTML strips everything the UGC policy does not allow. Used both as
// the markdown fallback and for HTML bodies coming from imported feeds.
func SanitizeHTML(source string) string {
	return policy.Sanitize(source)
}

// StripHTML reduces HTML to its plain text, for teasers and summaries.
func StripHTML(source string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(source))
}
