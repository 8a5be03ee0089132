package main

import (
	"fmt"

	"github.com/fwojciec/bodymd"
	"github.com/fwojciec/bodymd/fs"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	content, err := mirrorContent(deps, c.File, c.Frontmatter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bodymd.ErrorMessage(err))
		return err
	}

	if err := deps.Mirrors.WriteMirror(c.Mirror, content); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write %q: %s\n", c.Mirror, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Mirror)
	return nil
}

// mirrorContent generates the mirror file content for an HTML source.
func mirrorContent(deps *Dependencies, file string, frontmatter bool) (string, error) {
	src, err := readSource(file)
	if err != nil {
		return "", err
	}

	frag, err := deps.Extractor.Extract(src)
	if err != nil {
		return "", bodymd.Errorf(bodymd.ErrorCode(err), "%s: %s", file, bodymd.ErrorMessage(err))
	}

	md, err := deps.Converter.Convert(frag.BodyHTML)
	if err != nil {
		return "", bodymd.Errorf(bodymd.ErrorCode(err), "%s: %s", file, bodymd.ErrorMessage(err))
	}

	if !frontmatter {
		return md, nil
	}

	m := &bodymd.Mirror{
		SourcePath: file,
		Title:      frag.Title,
		Markdown:   md,
	}
	if err := m.Validate(); err != nil {
		return "", err
	}
	return fs.FormatMirror(m), nil
}
