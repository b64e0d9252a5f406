package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Link is a hyperlink extracted from article markup.
type Link struct {
	// Text is the visible link text, whitespace-trimmed.
	Text string

	// Href is the raw href attribute value.
	Href string
}

// blankRunRegex matches runs of three or more consecutive newlines,
// which render as two or more blank lines.
var blankRunRegex = regexp.MustCompile(`\n{3,}`)

// ExtractText returns the readable text of article markup.
//
// Script and style subtrees are dropped, visible text fragments are
// trimmed and joined with newlines, and runs of three or more blank
// lines collapse to exactly one blank line.
//
// Design decision: We use golang.org/x/net/html rather than regex
// stripping because it correctly handles malformed HTML common in
// CMS-authored article bodies. html.Parse never returns an error for
// arbitrary byte input, so this function is total: worst case it
// returns best-effort text, never fails.
func ExtractText(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// html.Parse only fails on reader errors, which strings.Reader
		// never produces. Fall back to the raw input just in case.
		return strings.TrimSpace(markup)
	}

	var fragments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				fragments = append(fragments, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text := strings.Join(fragments, "\n")
	return blankRunRegex.ReplaceAllString(text, "\n\n")
}

// ExtractLinks returns all hyperlinks in document order.
// Duplicates are preserved; callers that need a set deduplicate
// themselves.
func ExtractLinks(markup string) []Link {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	links := make([]Link, 0)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := getAttr(n, "href"); href != "" {
				links = append(links, Link{
					Text: strings.TrimSpace(nodeText(n)),
					Href: href,
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links
}

// nodeText concatenates the text content of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
