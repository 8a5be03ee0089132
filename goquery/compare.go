package goquery

import (
	"sort"
	"strings"

	"github.com/fwojciec/bodymd"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StructurallyEqual reports whether the body subtrees of two HTML inputs
// are structurally equivalent: same element names, same attributes, and
// same whitespace-normalized text content. Comments and whitespace-only
// text nodes are ignored. Serialization details (attribute quoting,
// self-closing rendering) do not affect the result.
//
// Either input may be a full document or a bare fragment; lenient parsing
// places fragment content under a body element in both cases.
func StructurallyEqual(a, b string) (bool, error) {
	na, err := parseBody(a)
	if err != nil {
		return false, err
	}
	nb, err := parseBody(b)
	if err != nil {
		return false, err
	}
	return equalNodes(na, nb), nil
}

// parseBody parses HTML leniently and returns the body element node.
func parseBody(rawHTML string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, bodymd.Errorf(bodymd.EINVALID, "failed to parse HTML: %v", err)
	}
	body := findBody(doc)
	if body == nil {
		return nil, bodymd.Errorf(bodymd.EINTERNAL, "parsed tree has no body element")
	}
	return body, nil
}

// findBody returns the first body element in the tree, or nil.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

func equalNodes(a, b *html.Node) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case html.ElementNode:
		if a.Data != b.Data || !equalAttrs(a.Attr, b.Attr) {
			return false
		}
	case html.TextNode:
		if normalizeText(a.Data) != normalizeText(b.Data) {
			return false
		}
	}

	ac := significantChildren(a)
	bc := significantChildren(b)
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !equalNodes(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// significantChildren returns the children that carry structure: elements
// and non-whitespace text. Comments and doctypes are skipped.
func significantChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			children = append(children, c)
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				children = append(children, c)
			}
		}
	}
	return children
}

// equalAttrs compares attribute sets ignoring order.
func equalAttrs(a, b []html.Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	ka := attrKeys(a)
	kb := attrKeys(b)
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}

func attrKeys(attrs []html.Attribute) []string {
	keys := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		keys = append(keys, attr.Namespace+"|"+attr.Key+"="+attr.Val)
	}
	sort.Strings(keys)
	return keys
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
