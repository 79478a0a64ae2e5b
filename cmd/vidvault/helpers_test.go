package main

import (
	"reflect"
	"testing"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"7", 7, false},
		{" 12 ", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := parseID(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseID(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("parseID(%q) = %d, %v; want %d", tc.input, got, err, tc.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"  ", nil},
		{"go", []string{"go"}},
		{"go, concurrency ,  talks", []string{"go", "concurrency", "talks"}},
		{",,go,", []string{"go"}},
	}
	for _, tc := range cases {
		if got := splitTags(tc.input); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
