package store

import (
	"encoding/json"
	"time"
)

// Video is one library record. The ID is assigned by the Store on Add and is
// stable for the record's lifetime.
type Video struct {
	ID        int64
	Title     string
	URL       string
	Duration  string
	Notes     string
	Tags      []string
	AddedAt   time.Time
	UpdatedAt time.Time

	// Extra carries JSON fields this version of vidvault does not know
	// about. They are captured verbatim on decode and re-emitted on encode
	// so a load/save round-trip never drops them.
	Extra map[string]json.RawMessage
}

type videoJSON struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Duration  string    `json:"duration,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	AddedAt   time.Time `json:"added_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

var knownVideoFields = map[string]struct{}{
	"id":         {},
	"title":      {},
	"url":        {},
	"duration":   {},
	"notes":      {},
	"tags":       {},
	"added_at":   {},
	"updated_at": {},
}

// MarshalJSON emits the known fields plus any preserved unknown fields.
// Unknown fields never shadow known ones.
func (v Video) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(videoJSON{
		ID:        v.ID,
		Title:     v.Title,
		URL:       v.URL,
		Duration:  v.Duration,
		Notes:     v.Notes,
		Tags:      v.Tags,
		AddedAt:   v.AddedAt,
		UpdatedAt: v.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	if len(v.Extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, raw := range v.Extra {
		if _, known := knownVideoFields[key]; known {
			continue
		}
		merged[key] = raw
	}
	return json.Marshal(merged)
}

// UnmarshalJSON decodes the known fields and stashes everything else in
// Extra.
func (v *Video) UnmarshalJSON(data []byte) error {
	var known videoJSON
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	*v = Video{
		ID:        known.ID,
		Title:     known.Title,
		URL:       known.URL,
		Duration:  known.Duration,
		Notes:     known.Notes,
		Tags:      known.Tags,
		AddedAt:   known.AddedAt,
		UpdatedAt: known.UpdatedAt,
	}
	for key := range knownVideoFields {
		delete(all, key)
	}
	if len(all) > 0 {
		v.Extra = all
	}
	return nil
}

// Clone returns a deep copy so callers can hold records without aliasing
// store-owned slices and maps.
func (v Video) Clone() Video {
	clone := v
	if v.Tags != nil {
		clone.Tags = append([]string(nil), v.Tags...)
	}
	if v.Extra != nil {
		clone.Extra = make(map[string]json.RawMessage, len(v.Extra))
		for key, raw := range v.Extra {
			clone.Extra[key] = raw
		}
	}
	return clone
}
