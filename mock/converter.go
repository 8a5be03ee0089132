package mock

import "github.com/fwojciec/bodymd"

var _ bodymd.Converter = (*Converter)(nil)

// Converter is a mock implementation of bodymd.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
