package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names a sortable record field.
type SortKey string

const (
	SortByID       SortKey = "id"
	SortByTitle    SortKey = "title"
	SortByDuration SortKey = "duration"
	SortByAdded    SortKey = "added"
)

// ParseSortKey maps user input to a SortKey.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortByID:
		return SortByID, nil
	case SortByTitle:
		return SortByTitle, nil
	case SortByDuration:
		return SortByDuration, nil
	case SortByAdded:
		return SortByAdded, nil
	default:
		return "", fmt.Errorf("%w: sort key %q (want id, title, duration, or added)", ErrValidation, raw)
	}
}

// SortedBy returns the records ordered by the given key. The sort is stable
// and pure: the stored insertion order is untouched.
func (s *Store) SortedBy(key SortKey, ascending bool) ([]Video, error) {
	compare, err := compareFunc(key)
	if err != nil {
		return nil, err
	}

	out := s.List()
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j])
		if ascending {
			return c < 0
		}
		return c > 0
	})
	return out, nil
}

// Reorder rewrites the stored order itself, stably sorted by the given key.
// Ids and the id counter are untouched; the store becomes dirty so the new
// order reaches disk on the next save.
func (s *Store) Reorder(key SortKey, ascending bool) error {
	compare, err := compareFunc(key)
	if err != nil {
		return err
	}

	sort.SliceStable(s.videos, func(i, j int) bool {
		c := compare(s.videos[i], s.videos[j])
		if ascending {
			return c < 0
		}
		return c > 0
	})
	s.dirty = true
	return nil
}

func compareFunc(key SortKey) (func(a, b Video) int, error) {
	switch key {
	case SortByID:
		return func(a, b Video) int {
			switch {
			case a.ID < b.ID:
				return -1
			case a.ID > b.ID:
				return 1
			}
			return 0
		}, nil
	case SortByTitle:
		collator := collate.New(language.Und, collate.IgnoreCase)
		return func(a, b Video) int {
			return collator.CompareString(a.Title, b.Title)
		}, nil
	case SortByDuration:
		return compareDurations, nil
	case SortByAdded:
		return func(a, b Video) int {
			switch {
			case a.AddedAt.Before(b.AddedAt):
				return -1
			case a.AddedAt.After(b.AddedAt):
				return 1
			}
			return 0
		}, nil
	default:
		return nil, fmt.Errorf("%w: sort key %q", ErrValidation, string(key))
	}
}

// compareDurations orders clock-style durations ("5:34", "1:02:15")
// numerically. Values that do not parse sort after parseable ones, compared
// as plain strings among themselves.
func compareDurations(a, b Video) int {
	secondsA, okA := durationSeconds(a.Duration)
	secondsB, okB := durationSeconds(b.Duration)
	switch {
	case okA && okB:
		switch {
		case secondsA < secondsB:
			return -1
		case secondsA > secondsB:
			return 1
		}
		return 0
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a.Duration, b.Duration)
	}
}

func durationSeconds(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, false
	}
	var total int64
	for _, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}
