package catalog

import "testing"

func TestSearch_EmptyQuery(t *testing.T) {
	c := New()

	res := c.Search("   ")

	if len(res.Tracks) != 0 || len(res.Artists) != 0 {
		t.Errorf("Search(blank) = %d tracks, %d artists, want none", len(res.Tracks), len(res.Artists))
	}
}

func TestSearch_MatchesTitleCaseInsensitive(t *testing.T) {
	c := New()

	res := c.Search("ENCORE")

	if len(res.Tracks) != 1 {
		t.Fatalf("Search(ENCORE) = %d tracks, want 1", len(res.Tracks))
	}
	if res.Tracks[0].Title != "Encore" {
		t.Errorf("track title = %q, want Encore", res.Tracks[0].Title)
	}
}

func TestSearch_MatchesArtistAcrossTracksAndArtists(t *testing.T) {
	c := New()

	res := c.Search("eminem")

	if len(res.Tracks) != 3 {
		t.Errorf("Search(eminem) = %d tracks, want 3", len(res.Tracks))
	}
	if len(res.Artists) != 1 {
		t.Errorf("Search(eminem) = %d artists, want 1", len(res.Artists))
	}
}

func TestSearch_MatchesAlbum(t *testing.T) {
	c := New()

	res := c.Search("city life")

	if len(res.Tracks) != 1 {
		t.Fatalf("Search(city life) = %d tracks, want 1", len(res.Tracks))
	}
	if res.Tracks[0].ID != "6" {
		t.Errorf("track id = %q, want 6", res.Tracks[0].ID)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	c := New()

	res := c.Search("zzzzzz")

	if len(res.Tracks) != 0 || len(res.Artists) != 0 {
		t.Error("Search(zzzzzz) should match nothing")
	}
}

func TestTracksByAlbum(t *testing.T) {
	c := New()

	tracks := c.TracksByAlbum("encore")
	if len(tracks) != 1 {
		t.Fatalf("TracksByAlbum(encore) = %d tracks, want 1", len(tracks))
	}
	if tracks[0].ID != "10" {
		t.Errorf("track id = %q, want 10", tracks[0].ID)
	}

	if got := c.TracksByAlbum("missing"); len(got) != 0 {
		t.Error("TracksByAlbum(missing) should match nothing")
	}
}

func TestTracksByArtist(t *testing.T) {
	c := New()

	tracks := c.TracksByArtist("Eminem")
	if len(tracks) != 3 {
		t.Fatalf("TracksByArtist(Eminem) = %d tracks, want 3", len(tracks))
	}
	for _, tr := range tracks {
		if tr.Artist != "Eminem" {
			t.Errorf("track %q has artist %q", tr.Title, tr.Artist)
		}
	}
}
