package tagger

import (
	"strings"

	"udio-tagger/internal/api/discogs"
)

// ChooseBest picks the most plausible release from search results.
// Scoring favors results whose title starts with the searched title,
// mentions the artist, and is widely held in collections. Ties keep
// the earliest result, which preserves catalog relevance order.
func ChooseBest(results []discogs.SearchResult, title, artist string) *discogs.SearchResult {
	if len(results) == 0 {
		return nil
	}

	best := 0
	bestScore := scoreResult(&results[0], title, artist)
	for i := 1; i < len(results); i++ {
		if s := scoreResult(&results[i], title, artist); s > bestScore {
			best, bestScore = i, s
		}
	}
	return &results[best]
}

func scoreResult(r *discogs.SearchResult, title, artist string) int {
	resultTitle := strings.ToLower(r.Title)
	title = strings.ToLower(strings.TrimSpace(title))
	artist = strings.ToLower(strings.TrimSpace(artist))

	score := 0
	if title != "" && strings.HasPrefix(resultTitle, title) {
		score += 3
	}
	if artist != "" && strings.Contains(resultTitle, artist) {
		score += 2
	}
	score += r.Community.Have / 100
	return score
}
