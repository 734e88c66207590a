package tagger

import (
	"reflect"
	"testing"

	"udio-tagger/internal/api/discogs"
)

func TestCleanTokens(t *testing.T) {
	tokens := []string{"  House ", "Drum & Bass", "Pop/Rock", "(Live)", "house", ""}
	got := CleanTokens(tokens)
	want := []string{"house", "drum and bass", "pop rock", "live"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanTokens() = %v, want %v", got, want)
	}
}

func TestCleanTokensDeduplicatesPreservingOrder(t *testing.T) {
	got := CleanTokens([]string{"Electronic", "House", "electronic", "HOUSE", "Techno"})
	want := []string{"electronic", "house", "techno"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanTokens() = %v, want %v", got, want)
	}
}

func TestBuildTagList(t *testing.T) {
	release := &discogs.Release{
		Year:    2001,
		Country: "France",
		Genres:  []string{"Electronic"},
		Styles:  []string{"House", "Disco"},
		Formats: []discogs.Format{{Name: "CD"}, {Name: "Vinyl"}},
		Labels:  []discogs.Label{{Name: "Virgin"}},
	}

	got := BuildTagList(release, DefaultMaxTags)
	want := []string{"house", "disco", "electronic", "2001", "france", "cd", "vinyl", "virgin"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildTagList() = %v, want %v", got, want)
	}
}

func TestBuildTagListCapped(t *testing.T) {
	release := &discogs.Release{
		Styles: []string{"a", "b", "c", "d", "e"},
		Genres: []string{"f", "g", "h"},
	}

	got := BuildTagList(release, 4)
	if len(got) != 4 {
		t.Fatalf("Expected 4 tags, got %d: %v", len(got), got)
	}
	// Styles come before genres
	if got[0] != "a" || got[3] != "d" {
		t.Errorf("Unexpected tag order: %v", got)
	}
}

func TestBuildTagListSkipsMissingFields(t *testing.T) {
	release := &discogs.Release{
		Genres: []string{"Jazz"},
	}

	got := BuildTagList(release, DefaultMaxTags)
	want := []string{"jazz"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildTagList() = %v, want %v", got, want)
	}
}

func TestJoinTags(t *testing.T) {
	if got := JoinTags([]string{"house", "2001", "france"}); got != "house, 2001, france" {
		t.Errorf("JoinTags() = %q", got)
	}
	if got := JoinTags(nil); got != "" {
		t.Errorf("JoinTags(nil) = %q, want empty", got)
	}
}
