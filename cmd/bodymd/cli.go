package main

import (
	"context"
	"io"
	"os"

	"github.com/fwojciec/bodymd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor bodymd.Extractor
	Converter bodymd.Converter
	Mirrors   bodymd.MirrorStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline steps to stderr"`

	Extract ExtractCmd `cmd:"" help:"Print the body element of an HTML file"`
	Convert ConvertCmd `cmd:"" help:"Print the body of an HTML file as Markdown"`
	Sync    SyncCmd    `cmd:"" help:"Write or update the Markdown mirror of an HTML file"`
	Check   CheckCmd   `cmd:"" help:"Check whether the Markdown mirror is up to date"`
	Verify  VerifyCmd  `cmd:"" help:"Verify that body extraction round-trips structurally"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" help:"Path to HTML file"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	File string `arg:"" help:"Path to HTML file"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	File        string `arg:"" help:"Path to HTML file"`
	Mirror      string `arg:"" help:"Path to Markdown mirror file"`
	Frontmatter bool   `help:"Prepend YAML frontmatter with source path and title"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	File        string `arg:"" help:"Path to HTML file"`
	Mirror      string `arg:"" help:"Path to Markdown mirror file"`
	Frontmatter bool   `help:"Expect YAML frontmatter in the mirror"`
}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct {
	File string `arg:"" help:"Path to HTML file"`
}

// readSource reads the HTML source file.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", bodymd.Errorf(bodymd.ENOTFOUND, "cannot read %q: file not found", path)
		}
		return "", bodymd.Errorf(bodymd.ENOTFOUND, "cannot read %q: %v", path, err)
	}
	return string(data), nil
}
