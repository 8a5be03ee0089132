// Package mock provides function-field mocks of the bodymd interfaces.
package mock

import "github.com/fwojciec/bodymd"

var _ bodymd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of bodymd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*bodymd.Fragment, error)
}

func (e *Extractor) Extract(html string) (*bodymd.Fragment, error) {
	return e.ExtractFn(html)
}
