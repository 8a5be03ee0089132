// Package htmltomarkdown renders body fragments as Markdown for mirror
// files.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/bodymd"
)

// Ensure Converter implements bodymd.Converter at compile time.
var _ bodymd.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert body fragments to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown. The result ends with
// exactly one newline, so written mirror files are byte-stable across
// regenerations.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", bodymd.Errorf(bodymd.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", bodymd.Errorf(bodymd.EINTERNAL, "markdown conversion failed: %v", err)
	}

	return strings.TrimRight(result, "\n") + "\n", nil
}
