package store

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns every record whose title, URL, notes, or tags contain the
// query, compared case-insensitively via Unicode case folding. Results keep
// insertion order; the store is never mutated. An empty query matches
// nothing.
func (s *Store) Search(query string) []Video {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	folder := cases.Fold()
	needle := folder.String(query)

	var hits []Video
	for _, v := range s.videos {
		if matchesVideo(folder, v, needle) {
			hits = append(hits, v.Clone())
		}
	}
	return hits
}

func matchesVideo(folder cases.Caser, v Video, needle string) bool {
	if strings.Contains(folder.String(v.Title), needle) {
		return true
	}
	if strings.Contains(folder.String(v.URL), needle) {
		return true
	}
	if strings.Contains(folder.String(v.Notes), needle) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(folder.String(tag), needle) {
			return true
		}
	}
	return false
}
