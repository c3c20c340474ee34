package quill

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestTitle(t *testing.T) {
	if got, want := Title(""), "quill "+Version()+" - untitled"; got != want {
		t.Fatalf("title: got %q, want %q", got, want)
	}
	if got, want := Title("/tmp/a.txt"), "quill "+Version()+" - /tmp/a.txt"; got != want {
		t.Fatalf("title: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-alpha.1", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
