// Package editor provides a Bubble Tea text editing surface backed by the
// buffer package.
//
// Key and mouse input is translated into Actions. Hosts decide when to apply
// them, which lets an application own the document state (dirty tracking,
// read-only phases) while the editor owns input mapping, viewport behavior,
// grapheme-aware rendering and the highlighting hook.
package editor
