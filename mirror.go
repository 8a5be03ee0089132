package bodymd

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Mirror represents a Markdown rendering of an HTML source document.
type Mirror struct {
	// SourcePath is the path of the HTML document the mirror was
	// generated from.
	SourcePath string

	// Title is the source document title, if any.
	Title string

	// Markdown is the rendered mirror content.
	Markdown string
}

// Validate returns an error if the mirror contains invalid fields.
func (m *Mirror) Validate() error {
	if m.SourcePath == "" {
		return Errorf(EINVALID, "mirror source path required")
	}
	if m.Markdown == "" {
		return Errorf(EINVALID, "mirror content required")
	}
	return nil
}

// MirrorStore persists mirror files.
type MirrorStore interface {
	// WriteMirror writes content to path atomically, creating parent
	// directories as needed. A failed write never leaves a truncated
	// file at path.
	WriteMirror(path string, content string) error

	// UpToDate reports whether the file at path already holds content.
	// Returns ENOTFOUND if the file does not exist.
	UpToDate(path string, content string) (bool, error)
}

// ContentHash computes a hash of the content using xxhash and returns it
// as a hex string.
func ContentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%016x", h)
}
