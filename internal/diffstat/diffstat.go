// Package diffstat summarizes line changes between two texts.
package diffstat

import (
	"fmt"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Stat counts added and deleted lines.
type Stat struct {
	Added   int
	Deleted int
}

func (s Stat) IsZero() bool { return s.Added == 0 && s.Deleted == 0 }

func (s Stat) String() string { return fmt.Sprintf("+%d -%d", s.Added, s.Deleted) }

// Compute diffs before and after line by line.
func Compute(before, after string) Stat {
	if before == after {
		return Stat{}
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var s Stat
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			s.Added += countLines(df.Text)
		case dmp.DiffDelete:
			s.Deleted += countLines(df.Text)
		}
	}
	return s
}

func countLines(text string) int {
	n := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// Tracker caches the stat against a baseline until the text version moves.
type Tracker struct {
	baseline string
	version  uint64
	valid    bool
	stat     Stat
}

// Reset sets a new baseline and drops the cached stat.
func (t *Tracker) Reset(baseline string) {
	t.baseline = baseline
	t.valid = false
}

func (t *Tracker) Baseline() string { return t.baseline }

// Stat returns the stat for the text at version, calling text only when the
// version differs from the cached one.
func (t *Tracker) Stat(version uint64, text func() string) Stat {
	if t.valid && t.version == version {
		return t.stat
	}
	t.stat = Compute(t.baseline, text())
	t.version = version
	t.valid = true
	return t.stat
}
