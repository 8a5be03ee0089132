package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bodymd"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements bodymd.Extractor at compile time.
var _ bodymd.Extractor = (*Extractor)(nil)

// Extractor locates and serializes the body element of an HTML document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns the document's single body element
// serialized as an HTML fragment, along with the head title if present.
func (e *Extractor) Extract(rawHTML string) (*bodymd.Fragment, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, bodymd.Errorf(bodymd.EINVALID, "empty HTML input")
	}

	n, err := countBodyTags(rawHTML)
	if err != nil {
		return nil, bodymd.Errorf(bodymd.EINVALID, "failed to parse HTML: %v", err)
	}
	if n == 0 {
		return nil, bodymd.Errorf(bodymd.EINVALID, "no <body> element found")
	}
	if n > 1 {
		return nil, bodymd.Errorf(bodymd.EINVALID, "multiple <body> elements found (%d)", n)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, bodymd.Errorf(bodymd.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.Find("body").First()
	if sel.Length() == 0 {
		return nil, bodymd.Errorf(bodymd.EINTERNAL, "parsed tree has no body element")
	}

	bodyHTML, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, bodymd.Errorf(bodymd.EINTERNAL, "failed to serialize body element: %v", err)
	}

	title := strings.TrimSpace(doc.Find("head > title").First().Text())

	return &bodymd.Fragment{
		Title:    title,
		BodyHTML: bodyHTML,
	}, nil
}

// countBodyTags counts explicit <body> start tags in the source.
// Lenient tree construction synthesizes a body for every document and
// merges sibling bodies into a single node, so cardinality has to be
// judged on the token stream. The tokenizer emits comments and the raw
// text of script/style elements as separate token types, so a literal
// "<body>" inside them is never counted.
func countBodyTags(rawHTML string) (int, error) {
	z := html.NewTokenizer(strings.NewReader(rawHTML))
	count := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return 0, err
			}
			return count, nil
		}
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.Body {
				count++
			}
		}
	}
}
