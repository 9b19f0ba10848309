package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// EnhanceHTMLContent hardens image tags in rendered HTML and turns bare
// YouTube links into embedded players.
func EnhanceHTMLContent(htmlStr string) string {
	if htmlStr == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return htmlStr
	}

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		s.SetAttr("referrerpolicy", "no-referrer")
		s.SetAttr("rel", "noopener")
		s.SetAttr("loading", "lazy")
	})

	// A paragraph holding nothing but a video link becomes an embedded player
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())

		if strings.HasPrefix(text, "http") && !strings.Contains(text, " ") {
			var embedHTML string

			if strings.Contains(text, "youtube.com/watch?v=") {
				parts := strings.Split(text, "v=")
				if len(parts) > 1 {
					videoID := strings.Split(parts[1], "&")[0]
					embedHTML = `<div class="video-container"><iframe src="https://www.youtube.com/embed/` + videoID + `" frameborder="0" allowfullscreen allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"></iframe></div>`
				}
			} else if strings.Contains(text, "youtu.be/") {
				parts := strings.Split(text, "youtu.be/")
				if len(parts) > 1 {
					videoID := strings.Split(parts[1], "?")[0]
					embedHTML = `<div class="video-container"><iframe src="https://www.youtube.com/embed/` + videoID + `" frameborder="0" allowfullscreen allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"></iframe></div>`
				}
			}

			if embedHTML != "" {
				s.ReplaceWithHtml(embedHTML)
			}
		}
	})

	// goquery renders full document tags if missing, we just want the body content
	html, _ := doc.Find("body").Html()
	if html == "" {
		html, _ = doc.Html()
	}

	return html
}
