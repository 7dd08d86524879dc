package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// unwantedTags are stripped entirely before extracting text from an
// HTML description
var unwantedTags = []string{"script", "style", "noscript", "iframe"}

// CleanDescription converts a provider description to plain text. Some
// providers ship raw HTML fragments; those are parsed, stripped of
// non-content tags and flattened to text with whitespace collapsed.
// Plain-text input passes through trimmed. A parse failure keeps the
// original text rather than dropping the description.
func CleanDescription(raw string) string {
	if !strings.Contains(raw, "<") {
		return strings.TrimSpace(raw)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}

	for _, tag := range unwantedTags {
		doc.Find(tag).Remove()
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
