package ui

import (
	"testing"
	"time"

	"github.com/llehouerou/soundsphere/internal/catalog"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{60 * time.Second, "1:00"},
		{272 * time.Second, "4:32"},
		{3671 * time.Second, "61:11"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTrackItemTitle(t *testing.T) {
	track := catalog.Track{Title: "Mockingbird", Artist: "Eminem", Album: "Encore", Duration: 250}

	plain := trackItem{track: track}
	if got := plain.Title(); got != "Mockingbird" {
		t.Errorf("Title() = %q, want %q", got, "Mockingbird")
	}

	liked := trackItem{track: track, liked: true}
	if got := liked.Title(); got != "♥ Mockingbird" {
		t.Errorf("liked Title() = %q, want %q", got, "♥ Mockingbird")
	}

	want := "Eminem · Encore · 4:10"
	if got := plain.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}
