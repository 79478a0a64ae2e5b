package store

import (
	"fmt"
	"strings"
	"time"
)

// Store is the in-memory video library: an ordered sequence of records plus
// the id allocator. It is not safe for concurrent use; vidvault runs one
// operation at a time.
type Store struct {
	videos []Video
	nextID int64
	dirty  bool
}

// NewStore returns an empty library whose first allocated id will be 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Rebuild constructs a Store from previously persisted records, repairing
// whatever inconsistencies the file carried. Records with duplicate ids keep
// their first occurrence; records with non-positive ids are discarded. The
// next id becomes the stored counter when it is still strictly greater than
// every surviving id, and max+1 otherwise. The second return value reports
// how many records were discarded; when it is non-zero the store is dirty so
// the next save rewrites a clean file.
func Rebuild(videos []Video, storedNextID int64) (*Store, int) {
	s := &Store{}
	seen := make(map[int64]struct{}, len(videos))
	dropped := 0
	var maxID int64

	for _, v := range videos {
		if v.ID <= 0 {
			dropped++
			continue
		}
		if _, dup := seen[v.ID]; dup {
			dropped++
			continue
		}
		seen[v.ID] = struct{}{}
		s.videos = append(s.videos, v.Clone())
		if v.ID > maxID {
			maxID = v.ID
		}
	}

	s.nextID = maxID + 1
	if storedNextID > maxID {
		s.nextID = storedNextID
	}
	if dropped > 0 {
		s.dirty = true
	}
	return s, dropped
}

// AddOptions carries the optional fields accepted by Add.
type AddOptions struct {
	Duration string
	Notes    string
	Tags     []string
}

// Add validates the title and URL, allocates the next id, and appends the
// record.
func (s *Store) Add(title, url string, opts AddOptions) (Video, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if err := validateTitle(title); err != nil {
		return Video{}, err
	}
	if err := validateURL(url); err != nil {
		return Video{}, err
	}

	video := Video{
		ID:       s.nextID,
		Title:    title,
		URL:      url,
		Duration: strings.TrimSpace(opts.Duration),
		Notes:    strings.TrimSpace(opts.Notes),
		Tags:     normalizeTags(opts.Tags),
		AddedAt:  time.Now().UTC(),
	}
	s.nextID++
	s.videos = append(s.videos, video)
	s.dirty = true
	return video.Clone(), nil
}

// Fields is the optional-update payload for Update. Nil pointers keep the
// current value. The record id is not part of the payload: ids are immutable
// by construction.
type Fields struct {
	Title    *string
	URL      *string
	Duration *string
	Notes    *string
	Tags     *[]string
}

// Update mutates the record with the given id in place, re-validating any
// changed title or URL with the same rules as Add.
func (s *Store) Update(id int64, fields Fields) (Video, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Video{}, fmt.Errorf("%w: video %d", ErrNotFound, id)
	}

	if fields.Title != nil {
		trimmed := strings.TrimSpace(*fields.Title)
		if err := validateTitle(trimmed); err != nil {
			return Video{}, err
		}
		fields.Title = &trimmed
	}
	if fields.URL != nil {
		trimmed := strings.TrimSpace(*fields.URL)
		if err := validateURL(trimmed); err != nil {
			return Video{}, err
		}
		fields.URL = &trimmed
	}

	video := &s.videos[idx]
	if fields.Title != nil {
		video.Title = *fields.Title
	}
	if fields.URL != nil {
		video.URL = *fields.URL
	}
	if fields.Duration != nil {
		video.Duration = strings.TrimSpace(*fields.Duration)
	}
	if fields.Notes != nil {
		video.Notes = strings.TrimSpace(*fields.Notes)
	}
	if fields.Tags != nil {
		video.Tags = normalizeTags(*fields.Tags)
	}
	video.UpdatedAt = time.Now().UTC()
	s.dirty = true
	return video.Clone(), nil
}

// Delete removes the record with the given id. The id is never reused.
func (s *Store) Delete(id int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: video %d", ErrNotFound, id)
	}
	s.videos = append(s.videos[:idx], s.videos[idx+1:]...)
	s.dirty = true
	return nil
}

// Get returns the record with the given id.
func (s *Store) Get(id int64) (Video, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Video{}, fmt.Errorf("%w: video %d", ErrNotFound, id)
	}
	return s.videos[idx].Clone(), nil
}

// List returns every record in insertion order. The result is a deep copy;
// mutating it never touches the store.
func (s *Store) List() []Video {
	out := make([]Video, 0, len(s.videos))
	for _, v := range s.videos {
		out = append(out, v.Clone())
	}
	return out
}

// Len reports how many records the store holds.
func (s *Store) Len() int {
	return len(s.videos)
}

// NextID exposes the id counter for persistence. It is strictly greater than
// every id currently present.
func (s *Store) NextID() int64 {
	return s.nextID
}

// Dirty reports whether the store has unsaved mutations.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkClean records that the current state has been persisted.
func (s *Store) MarkClean() {
	s.dirty = false
}

func (s *Store) indexOf(id int64) int {
	for idx, v := range s.videos {
		if v.ID == id {
			return idx
		}
	}
	return -1
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
