package bodymd

// Fragment holds the body content extracted from an HTML document.
type Fragment struct {
	// Title is the document title taken from the head, if present.
	Title string

	// BodyHTML is the serialized <body> element, including its opening
	// and closing tags and the full subtree.
	BodyHTML string
}

// Extractor extracts the single body element from HTML documents.
type Extractor interface {
	// Extract parses raw HTML leniently and returns the document's body
	// element serialized as an HTML fragment. The document must contain
	// exactly one explicit <body> element; zero or multiple is EINVALID.
	Extract(html string) (*Fragment, error)
}
