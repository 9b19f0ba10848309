package handlers

import (
	"fmt"
	"html"
	"net/http"
	"os"
	"time"

	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/storage"
	"github.com/JuseonDo/GILab-Home-Page-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct {
	store *storage.Storage
}

func NewSEOHandler(store *storage.Storage) *SEOHandler {
	return &SEOHandler{store: store}
}

// getSiteURL returns the public site URL, falling back to the local dev
// address.
func getSiteURL() string {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}
	return siteURL
}

// RobotsTxt keeps crawlers on the content pages and away from the API.
func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	siteURL := getSiteURL()
	content := fmt.Sprintf(`User-agent: *
Allow: /

Disallow: /api/

Sitemap: %s/feed.xml

Crawl-delay: 1
`, siteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

// RSSFeed serves the published news as an RSS 2.0 feed.
func (h *SEOHandler) RSSFeed(c *gin.Context) {
	siteURL := getSiteURL()
	now := time.Now()

	items, err := h.store.ListRecentNews(20, true)
	if err != nil {
		respondStorageError(c, err, "")
		return
	}

	labName := "GILab"
	description := "News from the lab"
	if info, err := h.store.GetLabInfo(); err == nil {
		labName = info.LabName
		if info.Description != "" {
			description = info.Description
		}
	}

	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">
  <channel>
    <title>` + escapeXML(labName) + `</title>
    <link>` + siteURL + `</link>
    <description>` + escapeXML(description) + `</description>
    <language>en</language>
    <lastBuildDate>` + now.Format(time.RFC1123Z) + `</lastBuildDate>
    <atom:link href="` + siteURL + `/feed.xml" rel="self" type="application/rss+xml"/>
`

	for _, item := range items {
		link := fmt.Sprintf("%s/news/%s", siteURL, item.ID)

		summary := item.Summary
		if summary == "" {
			summary = utils.StripHTML(utils.RenderMarkdown(item.Content))
			runes := []rune(summary)
			if len(runes) > 300 {
				summary = string(runes[:300]) + "..."
			}
		}

		rss += `    <item>
      <title>` + escapeXML(item.Title) + `</title>
      <link>` + link + `</link>
      <description><![CDATA[` + summary + `]]></description>
      <pubDate>` + item.PublishedAt.Format(time.RFC1123Z) + `</pubDate>
      <guid isPermaLink="true">` + link + `</guid>
    </item>
`
	}

	rss += `  </channel>
</rss>`

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, rss)
}

// escapeXML escapes XML special characters.
func escapeXML(s string) string {
	return html.EscapeString(s)
}
