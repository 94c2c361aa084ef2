package keys

import "testing"

func TestBiomeKeyCanonicalizesTags(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Magitek Factory", "magitek_factory"},
		{" magitek  factory ", "magitek_factory"},
		{"MAGITEK FACTORY", "magitek_factory"},
		{"World of Ruin", "world_of_ruin"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := BiomeKey(tc.in); got != tc.want {
			t.Errorf("BiomeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
