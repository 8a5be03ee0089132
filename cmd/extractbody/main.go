// Command extractbody prints the body element of an HTML file to stdout.
//
// It takes exactly one argument, the path to the HTML file, and recognizes
// no flags or environment variables. It is meant to be driven by a build
// rule that redirects its output into a mirror file:
//
//	README.md: cheatsheet.html
//		extractbody cheatsheet.html > README.md
//
// On any failure a diagnostic goes to stderr, nothing goes to stdout, and
// the exit code is non-zero.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/bodymd"
	"github.com/fwojciec/bodymd/goquery"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the extraction and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: extractbody <html_file>")
		return 1
	}
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "extractbody: cannot read %q: %v\n", path, err)
		return 1
	}

	frag, err := goquery.NewExtractor().Extract(string(data))
	if err != nil {
		fmt.Fprintf(stderr, "extractbody: %s: %s\n", path, bodymd.ErrorMessage(err))
		return 1
	}

	fmt.Fprintln(stdout, frag.BodyHTML)
	return 0
}
