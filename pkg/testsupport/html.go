package testsupport

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// MustParseHTML parses a rendered document so tests can assert on structure
// instead of byte-exact output.
func MustParseHTML(t *testing.T, data []byte) *html.Node {
	t.Helper()

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Matcher selects element nodes.
type Matcher func(*html.Node) bool

// HasAttr matches elements carrying key, whatever its value.
func HasAttr(key string) Matcher {
	return func(n *html.Node) bool {
		_, ok := Attr(n, key)
		return ok
	}
}

// AttrEquals matches elements whose key attribute equals value.
func AttrEquals(key, value string) Matcher {
	return func(n *html.Node) bool {
		got, ok := Attr(n, key)
		return ok && got == value
	}
}

// HasClass matches elements listing class in their class attribute.
func HasClass(class string) Matcher {
	return func(n *html.Node) bool {
		value, _ := Attr(n, "class")
		for _, token := range strings.Fields(value) {
			if token == class {
				return true
			}
		}
		return false
	}
}

// Tag matches elements by tag name.
func Tag(name string) Matcher {
	return func(n *html.Node) bool {
		return n.Data == name
	}
}

// FindAll returns every element below root matching all matchers, in
// document order.
func FindAll(root *html.Node, matchers ...Matcher) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && matchAll(n, matchers) {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// FindFirst returns the first matching element or nil.
func FindFirst(root *html.Node, matchers ...Matcher) *html.Node {
	if found := FindAll(root, matchers...); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Attr returns the value of key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Text returns the whitespace-collapsed text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteByte(' ')
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if n != nil {
		walk(n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func matchAll(n *html.Node, matchers []Matcher) bool {
	for _, match := range matchers {
		if match != nil && !match(n) {
			return false
		}
	}
	return true
}
