// Package buffer implements quill's in-memory document: text, cursor,
// selection and the undo/redo edit log.
//
// Coordinates are 0-based (Row, GraphemeCol); columns count grapheme
// clusters, not bytes or runes. Ranges are half-open: [Start, End).
package buffer
