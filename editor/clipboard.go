package editor

// Clipboard provides editor-level clipboard integration.
//
// Failures never reach the UI; a failed read pastes nothing and a failed
// write is dropped.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
