package buffer

import "testing"

func TestComparePos(t *testing.T) {
	if got := ComparePos(Pos{Row: 0, GraphemeCol: 9}, Pos{Row: 1, GraphemeCol: 0}); got >= 0 {
		t.Fatalf("row order: expected < 0, got %d", got)
	}
	if got := ComparePos(Pos{Row: 1, GraphemeCol: 2}, Pos{Row: 1, GraphemeCol: 1}); got <= 0 {
		t.Fatalf("col order: expected > 0, got %d", got)
	}
	if got := ComparePos(Pos{Row: 3, GraphemeCol: 4}, Pos{Row: 3, GraphemeCol: 4}); got != 0 {
		t.Fatalf("equal: expected 0, got %d", got)
	}
}

func TestNormalizeRange_Idempotent(t *testing.T) {
	r := NormalizeRange(Range{Start: Pos{Row: 2, GraphemeCol: 3}, End: Pos{Row: 1, GraphemeCol: 9}})
	if r.Start != (Pos{Row: 1, GraphemeCol: 9}) || r.End != (Pos{Row: 2, GraphemeCol: 3}) {
		t.Fatalf("unexpected range: %#v", r)
	}
	if r2 := NormalizeRange(r); r2 != r {
		t.Fatalf("expected idempotent normalize: %#v != %#v", r2, r)
	}
}

func TestClampPos(t *testing.T) {
	lineLens := []int{1, 0, 3}
	ll := func(row int) int { return lineLens[row] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: -1, GraphemeCol: -1}, want: Pos{Row: 0, GraphemeCol: 0}},
		{in: Pos{Row: 999, GraphemeCol: 999}, want: Pos{Row: 2, GraphemeCol: 3}},
		{in: Pos{Row: 1, GraphemeCol: 5}, want: Pos{Row: 1, GraphemeCol: 0}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, len(lineLens), ll); got != tc.want {
			t.Fatalf("ClampPos(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
