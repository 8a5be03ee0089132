package main

import (
	"fmt"

	"github.com/fwojciec/bodymd"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	src, err := readSource(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bodymd.ErrorMessage(err))
		return err
	}

	frag, err := deps.Extractor.Extract(src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.File, bodymd.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, frag.BodyHTML)
	return nil
}
