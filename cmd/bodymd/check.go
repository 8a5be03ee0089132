package main

import (
	"fmt"

	"github.com/fwojciec/bodymd"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	content, err := mirrorContent(deps, c.File, c.Frontmatter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bodymd.ErrorMessage(err))
		return err
	}

	ok, err := deps.Mirrors.UpToDate(c.Mirror, content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bodymd.ErrorMessage(err))
		return err
	}
	if !ok {
		err := bodymd.Errorf(bodymd.ECONFLICT, "%s is out of date with %s (run 'bodymd sync')", c.Mirror, c.File)
		fmt.Fprintf(deps.Stderr, "error: %s\n", bodymd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s is up to date\n", c.Mirror)
	return nil
}
