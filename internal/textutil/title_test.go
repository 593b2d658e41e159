package textutil

import "testing"

func TestDisplayTitle(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/library/the.matrix.1999.mp4", "The Matrix 1999"},
		{"/library/big_buck_bunny.mp4", "Big Buck Bunny"},
		{"/library/Movie Night (2019).mp4", "Movie Night (2019)"},
		{"movie.mp4", "Movie"},
		{"...mp4", ".."},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DisplayTitle(tc.path); got != tc.want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
