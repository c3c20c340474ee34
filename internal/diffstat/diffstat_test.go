package diffstat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name          string
		before, after string
		want          Stat
	}{
		{"equal", "a\nb", "a\nb", Stat{}},
		{"replace line", "a\nb", "a\nc", Stat{Added: 1, Deleted: 1}},
		{"append", "a\n", "a\nb", Stat{Added: 1}},
		{"from empty", "", "x\ny", Stat{Added: 2}},
		{"to empty", "x\ny\n", "", Stat{Deleted: 2}},
		{"insert middle", "a\nc\n", "a\nb\nc\n", Stat{Added: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Compute(tc.before, tc.after))
		})
	}
}

func TestStat_String(t *testing.T) {
	require.Equal(t, "+3 -1", Stat{Added: 3, Deleted: 1}.String())
	require.True(t, Stat{}.IsZero())
}

func TestTracker_CachesByVersion(t *testing.T) {
	var tr Tracker
	tr.Reset("a\n")

	calls := 0
	text := func(s string) func() string {
		return func() string { calls++; return s }
	}

	require.Equal(t, Stat{Added: 1}, tr.Stat(1, text("a\nb\n")))
	require.Equal(t, Stat{Added: 1}, tr.Stat(1, text("ignored")))
	require.Equal(t, 1, calls)

	require.Equal(t, Stat{}, tr.Stat(2, text("a\n")))
	require.Equal(t, 2, calls)

	tr.Reset("a\nb\n")
	require.Equal(t, "a\nb\n", tr.Baseline())
	require.Equal(t, Stat{Deleted: 1}, tr.Stat(2, text("a\n")))
	require.Equal(t, 3, calls)
}
