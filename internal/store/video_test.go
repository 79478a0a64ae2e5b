package store_test

import (
	"encoding/json"
	"testing"

	"vidvault/internal/store"
)

func TestVideoPreservesUnknownFields(t *testing.T) {
	input := []byte(`{
		"id": 7,
		"title": "Conference Talk",
		"url": "https://example.com/talk",
		"rating": 5,
		"watched": true,
		"source": {"site": "youtube", "channel": "gophercon"}
	}`)

	var v store.Video
	if err := json.Unmarshal(input, &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.ID != 7 || v.Title != "Conference Talk" {
		t.Fatalf("known fields not decoded: %+v", v)
	}
	if len(v.Extra) != 3 {
		t.Fatalf("expected 3 preserved fields, got %v", v.Extra)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var roundTrip map[string]json.RawMessage
	if err := json.Unmarshal(out, &roundTrip); err != nil {
		t.Fatalf("unmarshal round-trip: %v", err)
	}
	if string(roundTrip["rating"]) != "5" {
		t.Fatalf("rating not preserved: %s", roundTrip["rating"])
	}
	if string(roundTrip["watched"]) != "true" {
		t.Fatalf("watched not preserved: %s", roundTrip["watched"])
	}
	var source map[string]string
	if err := json.Unmarshal(roundTrip["source"], &source); err != nil {
		t.Fatalf("source not preserved: %v", err)
	}
	if source["channel"] != "gophercon" {
		t.Fatalf("nested field lost: %v", source)
	}
}

func TestVideoUnknownFieldsNeverShadowKnownOnes(t *testing.T) {
	v := store.Video{
		ID:    3,
		Title: "Real Title",
		URL:   "https://example.com/3",
		Extra: map[string]json.RawMessage{
			"title": json.RawMessage(`"smuggled"`),
			"extra": json.RawMessage(`"kept"`),
		},
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(decoded["title"]) != `"Real Title"` {
		t.Fatalf("known field shadowed: %s", decoded["title"])
	}
	if string(decoded["extra"]) != `"kept"` {
		t.Fatalf("unknown field dropped: %s", decoded["extra"])
	}
}

func TestVideoOmitsEmptyOptionalFields(t *testing.T) {
	v := store.Video{ID: 1, Title: "T", URL: "https://example.com/1"}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"duration", "notes", "tags", "added_at", "updated_at"} {
		if _, present := decoded[key]; present {
			t.Fatalf("empty field %q should be omitted", key)
		}
	}
}

func TestVideoCloneIsDeep(t *testing.T) {
	v := store.Video{
		ID:    1,
		Title: "T",
		URL:   "https://example.com/1",
		Tags:  []string{"go"},
		Extra: map[string]json.RawMessage{"k": json.RawMessage(`1`)},
	}
	clone := v.Clone()
	clone.Tags[0] = "changed"
	clone.Extra["k"] = json.RawMessage(`2`)
	if v.Tags[0] != "go" || string(v.Extra["k"]) != "1" {
		t.Fatal("Clone shares memory with original")
	}
}
