// Package ingestion normalizes free text typed into the resume editor before it is
// analyzed: rich-text markup is stripped and descriptions are split into bullet lines.
package ingestion

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	markupRe     = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)
)

// bulletPrefixes are glyphs the editor and pasted text use to start a bullet.
var bulletPrefixes = []string{"•", "·", "▪", "◦", "‣", "–", "-", "*"}

// LooksLikeHTML reports whether s contains something resembling a tag.
func LooksLikeHTML(s string) bool {
	return markupRe.MatchString(s)
}

// StripHTML returns the text content of an HTML fragment. Block elements and <br>
// become line breaks so that list items stay on separate lines. Input that does not
// look like markup is returned unchanged.
func StripHTML(content string) string {
	if !LooksLikeHTML(content) {
		return content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Fall back to a regex strip; the editor occasionally saves broken fragments.
		return markupRe.ReplaceAllString(content, " ")
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li, p, div, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return doc.Text()
}

// CleanLine trims a line, drops a leading bullet glyph and collapses inner whitespace.
func CleanLine(line string) string {
	line = strings.TrimSpace(line)
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			line = strings.TrimSpace(strings.TrimPrefix(line, prefix))
			break
		}
	}
	return whitespaceRe.ReplaceAllString(line, " ")
}

// DescriptionLines splits an experience description into cleaned, non-empty bullet lines.
func DescriptionLines(description string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}

	text := StripHTML(description)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if cleaned := CleanLine(line); cleaned != "" {
			lines = append(lines, cleaned)
		}
	}
	return lines
}

// CleanText strips markup and collapses all whitespace into single spaces.
func CleanText(content string) string {
	if content == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(StripHTML(content), " "))
}

// FirstWord returns the first word of line with surrounding punctuation removed.
func FirstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,;:!?()[]{}\"'")
}

// Words returns the lower-cased alphabetic words of line.
func Words(line string) []string {
	return strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return (r < 'a' || r > 'z') && r != '\''
	})
}
