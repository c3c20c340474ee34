// Package quill is a single-document terminal text editor.
//
// The editing surface lives in the editor and buffer packages; the
// application state machine and its file I/O live under internal/.
package quill

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the program version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Title returns the window title for the given document path.
// An empty path names the unsaved document.
func Title(path string) string {
	name := "untitled"
	if path != "" {
		name = path
	}
	return "quill " + Version() + " - " + name
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
