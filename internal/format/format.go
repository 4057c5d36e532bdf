// Package format maps raw catalog records to the bounded display
// strings shown in the results pane.
package format

import (
	"fmt"

	"tunegrip/internal/domain"
)

// Format renders the first max tracks as "<Artist> - <Title>" display
// strings, preserving provider order. Fewer tracks than max yields a
// shorter list; the input slice is never modified.
func Format(tracks []domain.Track, max int) []string {
	if max < 0 {
		max = 0
	}
	n := len(tracks)
	if n > max {
		n = max
	}

	results := make([]string, 0, n)
	for _, track := range tracks[:n] {
		results = append(results, DisplayName(track))
	}
	return results
}

// DisplayName renders a single track for display
func DisplayName(track domain.Track) string {
	return fmt.Sprintf("%s - %s", track.Artist, track.Title)
}
