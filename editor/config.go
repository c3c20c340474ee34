package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ShowLineNums bool
	// TabWidth is the tab stop distance in cells. Zero means 4.
	TabWidth int

	Style  Style
	KeyMap KeyMap

	Highlighter Highlighter
	Clipboard   Clipboard

	// ReadOnly suppresses edit actions; movement and copy still work.
	ReadOnly bool

	// Forwarded to buffer.Options.
	HistoryLimit int
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return 4
	}
	return c.TabWidth
}
