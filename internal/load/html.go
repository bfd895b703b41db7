package load

import (
	"os"
	"strings"

	"golang.org/x/net/html"
)

// HTML handles notes exported as HTML (e.g., from wikis or web editors)
type HTML struct{}

// Name returns the format name
func (f *HTML) Name() string { return "html" }

// Extensions returns the HTML extensions
func (f *HTML) Extensions() []string { return []string{".html", ".htm"} }

// ExtractText parses the file and returns its visible text
func (f *HTML) ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return "", err
	}

	return extractVisibleText(doc), nil
}

// extractVisibleText extracts text nodes from HTML, skipping scripts/styles.
// Block-level elements become line breaks so list items and paragraphs stay
// separate sentences.
func extractVisibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "p", "div", "li", "br", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
				buf.WriteString("\n")
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return strings.TrimSpace(buf.String())
}
