// Package bodymd keeps a Markdown mirror of a static HTML page in sync
// with its source. It extracts the page's single <body> element, converts
// the fragment to Markdown, and writes or verifies the mirror file. The
// extracted fragment can also be emitted on its own, for build rules that
// redirect it into a target file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, fs/).
package bodymd
