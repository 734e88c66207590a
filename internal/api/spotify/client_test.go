package spotify

import "testing"

func TestParseResourceID(t *testing.T) {
	cases := []struct {
		url     string
		kind    string
		want    string
		wantErr bool
	}{
		{"https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M", "playlist", "37i9dQZF1DXcBWIGoYBM5M", false},
		{"https://open.spotify.com/track/0DiWol3AO6WpXZgp0goxAV?si=abc123", "track", "0DiWol3AO6WpXZgp0goxAV", false},
		{"open.spotify.com/album/4m2880jivSbbyEGAKfITCa", "album", "4m2880jivSbbyEGAKfITCa", false},
		{"https://open.spotify.com/intl-pt/track/0DiWol3AO6WpXZgp0goxAV", "track", "0DiWol3AO6WpXZgp0goxAV", false},
		{"https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M", "album", "", true},
		{"https://open.spotify.com/playlist/", "playlist", "", true},
		{"https://example.com/watch?v=xyz", "track", "", true},
	}

	for _, tc := range cases {
		got, err := parseResourceID(tc.url, tc.kind)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseResourceID(%q, %q): expected error, got %q", tc.url, tc.kind, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseResourceID(%q, %q) failed: %v", tc.url, tc.kind, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseResourceID(%q, %q) = %q, want %q", tc.url, tc.kind, got, tc.want)
		}
	}
}

func TestYearFromReleaseDate(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2001-03-12", "2001"},
		{"2001", "2001"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := yearFromReleaseDate(tc.date); got != tc.want {
			t.Errorf("yearFromReleaseDate(%q) = %q, want %q", tc.date, got, tc.want)
		}
	}
}
