package main

import (
	"fmt"

	"github.com/fwojciec/bodymd"
	"github.com/fwojciec/bodymd/goquery"
)

// Run executes the verify command.
func (c *VerifyCmd) Run(deps *Dependencies) error {
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

	equal, err := goquery.StructurallyEqual(src, frag.BodyHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.File, bodymd.ErrorMessage(err))
		return err
	}
	if !equal {
		err := bodymd.Errorf(bodymd.EINTERNAL, "serialized fragment does not match the source body structure")
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.File, bodymd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: body extraction round-trips\n", c.File)
	return nil
}
