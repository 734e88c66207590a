package tagger

import (
	"regexp"
	"strconv"
	"strings"

	"udio-tagger/internal/api/discogs"
)

// DefaultMaxTags caps the number of tags emitted per track
const DefaultMaxTags = 12

var (
	reAmpersand  = regexp.MustCompile(`\s*&\s*`)
	rePunct      = regexp.MustCompile(`[()/]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// CleanTokens normalizes raw tag tokens: lowercase, "&" becomes "and",
// bracket and slash characters become spaces, runs of whitespace
// collapse, empties drop, and duplicates drop preserving first
// occurrence order.
func CleanTokens(tokens []string) []string {
	cleaned := make([]string, 0, len(tokens))
	seen := make(map[string]bool)
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		t = reAmpersand.ReplaceAllString(t, " and ")
		t = rePunct.ReplaceAllString(t, " ")
		t = strings.TrimSpace(reWhitespace.ReplaceAllString(t, " "))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		cleaned = append(cleaned, t)
	}
	return cleaned
}

// BuildTagList extracts descriptive tokens from a release in a fixed
// order: styles, genres, year, country, formats, labels. The cleaned
// list is capped at maxTags.
func BuildTagList(release *discogs.Release, maxTags int) []string {
	if maxTags <= 0 {
		maxTags = DefaultMaxTags
	}

	tokens := make([]string, 0, len(release.Styles)+len(release.Genres)+len(release.Formats)+len(release.Labels)+2)
	tokens = append(tokens, release.Styles...)
	tokens = append(tokens, release.Genres...)
	if release.Year > 0 {
		tokens = append(tokens, strconv.Itoa(release.Year))
	}
	if release.Country != "" {
		tokens = append(tokens, release.Country)
	}
	for _, f := range release.Formats {
		tokens = append(tokens, f.Name)
	}
	for _, l := range release.Labels {
		tokens = append(tokens, l.Name)
	}

	tags := CleanTokens(tokens)
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// JoinTags renders a tag list as the comma-delimited prompt line
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
