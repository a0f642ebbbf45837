// Package htmltext turns a fetched HTML page into the ordered collection
// of text units consumed by the topic extractor: body node texts that pass
// a text-density filter, meta keywords/title/description values, and the
// page title.
package htmltext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// ErrNoBody is returned when the document has no body element or the body
// holds no child elements at all.
var ErrNoBody = errors.New("no body or body content found")

// minChars is the shortest direct node text worth keeping. Shorter
// fragments are navigation labels and list stubs more often than prose.
const minChars = 25

// FromHTML decodes and parses a page and returns its content units in the
// order the extractor expects: filtered body texts, then meta values, then
// the title. contentType guides charset detection and may be empty.
func FromHTML(body []byte, contentType string) ([]string, error) {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}
	root, err := html.Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	units, err := bodyContent(root)
	if err != nil {
		return nil, err
	}
	units = append(units, metaContent(root)...)
	if title := titleContent(root); title != "" {
		units = append(units, title)
	}

	for i, u := range units {
		units[i] = norm.NFC.String(u)
	}
	return units, nil
}

// bodyContent walks every element under body and keeps the direct text of
// nodes whose text density clears the body's own density. Density is text
// characters over descendant tag count, with anchor text subtracted since
// link labels rarely carry topical prose.
func bodyContent(root *html.Node) ([]string, error) {
	body := findFirst(root, "body")
	if body == nil || countTags(body) == 0 {
		return nil, ErrNoBody
	}
	dropNoise(body)

	threshold := densityOf(body, false)

	var units []string
	walkElements(body, func(n *html.Node) {
		if densityOf(n, true) < threshold {
			return
		}
		text := collapseWhitespace(firstDirectText(n))
		if text != "" && len(text) > minChars {
			units = append(units, text)
		}
	})
	return units, nil
}

// metaContent collects the content attribute of meta tags whose other
// attributes mention keywords, title, or description.
func metaContent(root *html.Node) []string {
	var units []string
	walkElements(root, func(n *html.Node) {
		if !strings.EqualFold(n.Data, "meta") {
			return
		}
		content, ok := attrValue(n, "content")
		if !ok {
			return
		}
		for _, attr := range n.Attr {
			if strings.EqualFold(attr.Key, "content") {
				continue
			}
			v := attr.Val
			if strings.Contains(v, "keywords") || strings.Contains(v, "title") || strings.Contains(v, "description") {
				units = append(units, content)
			}
		}
	})
	return units
}

func titleContent(root *html.Node) string {
	t := findFirst(root, "title")
	if t == nil {
		return ""
	}
	return strings.TrimSpace(textOf(t))
}

// densityOf computes a node's text density. Nodes without descendant tags
// use the raw character count. discountLinks subtracts anchor text, which
// the whole-body threshold computation does not do.
func densityOf(n *html.Node, discountLinks bool) float64 {
	chars := len(textOf(n))
	if discountLinks {
		walkElements(n, func(c *html.Node) {
			if strings.EqualFold(c.Data, "a") {
				chars -= len(textOf(c))
			}
		})
	}
	tags := countTags(n)
	if tags == 0 {
		return float64(chars)
	}
	return float64(chars) / float64(tags)
}

// dropNoise removes script and style subtrees; they contribute characters
// but never topical text.
func dropNoise(n *html.Node) {
	var remove []*html.Node
	walkElements(n, func(c *html.Node) {
		name := strings.ToLower(c.Data)
		if name == "script" || name == "style" {
			remove = append(remove, c)
		}
	})
	for _, c := range remove {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
	}
}

// walkElements visits every descendant element of n, excluding n itself.
func walkElements(n *html.Node, visit func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			visit(c)
		}
		walkElements(c, visit)
	}
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func countTags(n *html.Node) int {
	count := 0
	walkElements(n, func(*html.Node) { count++ })
	return count
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return b.String()
}

// firstDirectText returns the first text node sitting immediately under n,
// not text from nested elements.
func firstDirectText(n *html.Node) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			return c.Data
		}
	}
	return ""
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val, true
		}
	}
	return "", false
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
