// Package fs provides file-based storage for mirror files.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/bodymd"
	"github.com/google/uuid"
)

// Ensure Store implements bodymd.MirrorStore at compile time.
var _ bodymd.MirrorStore = (*Store)(nil)

// Store implements bodymd.MirrorStore with atomic update semantics.
// Content is written to a uniquely named temporary file next to the
// target, then renamed over it, so an interrupted write never leaves a
// truncated mirror.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// WriteMirror writes content to path atomically, creating parent
// directories as needed.
func (s *Store) WriteMirror(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := path + ".tmp-" + uuid.New().String()
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// UpToDate reports whether the file at path already holds content,
// compared by content hash.
func (s *Store) UpToDate(path string, content string) (bool, error) {
	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, bodymd.Errorf(bodymd.ENOTFOUND, "mirror %q not found", path)
	}
	if err != nil {
		return false, err
	}
	return bodymd.ContentHash(string(existing)) == bodymd.ContentHash(content), nil
}

// FormatMirror formats a mirror with YAML frontmatter. The frontmatter
// carries only the source path and title; no timestamps, so output is
// identical across regenerations of the same input.
func FormatMirror(m *bodymd.Mirror) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(m.SourcePath)
	if m.Title != "" {
		b.WriteString("\ntitle: ")
		b.WriteString(m.Title)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(m.Markdown)
	return b.String()
}
