package library

import "testing"

func TestParseEpisodeID(t *testing.T) {
	cases := []struct {
		name        string
		wantSeason  int
		wantEpisode int
		wantTitle   string
	}{
		{"Show Name - S01E02 - Pilot", 1, 2, "Pilot"},
		{"S00E1000 - Making Of", 0, 1000, "Making Of"},
		{"show.s02e05", 2, 5, ""},
		{"Series - S00E05 - Behind the Scenes - Part 2", 0, 5, "Behind the Scenes - Part 2"},
		{"Show-with-dashes - S03E11 - Title", 3, 11, "Title"},
	}
	for _, tc := range cases {
		id, ok := ParseEpisodeID(tc.name)
		if !ok {
			t.Errorf("ParseEpisodeID(%q) did not match", tc.name)
			continue
		}
		if id.Season != tc.wantSeason || id.Episode != tc.wantEpisode {
			t.Errorf("ParseEpisodeID(%q) = S%dE%d, want S%dE%d",
				tc.name, id.Season, id.Episode, tc.wantSeason, tc.wantEpisode)
		}
		if id.Title != tc.wantTitle {
			t.Errorf("ParseEpisodeID(%q) title = %q, want %q", tc.name, id.Title, tc.wantTitle)
		}
	}
}

func TestParseEpisodeIDRejectsNonEpisodes(t *testing.T) {
	for _, name := range []string{"tvshow", "Season 1", "Some Movie (2020)", ""} {
		if _, ok := ParseEpisodeID(name); ok {
			t.Errorf("ParseEpisodeID(%q) should not match", name)
		}
	}
}

func TestIsSpecial(t *testing.T) {
	special, _ := ParseEpisodeID("S00E05")
	if !special.IsSpecial() {
		t.Error("season 00 is a special")
	}
	normal, _ := ParseEpisodeID("S01E05")
	if normal.IsSpecial() {
		t.Error("season 01 is not a special")
	}
}

func TestLabelAndExtraFolderName(t *testing.T) {
	id := EpisodeID{Season: 0, Episode: 1001}
	if got := id.Label(); got != "S00E1001" {
		t.Errorf("Label = %q", got)
	}
	if got := ExtraFolderName(id, "Gag Reel"); got != "S00E1001 - Gag Reel" {
		t.Errorf("ExtraFolderName = %q", got)
	}
	padded := EpisodeID{Season: 0, Episode: 7}
	if got := ExtraFolderName(padded, "Teaser"); got != "S00E0007 - Teaser" {
		t.Errorf("ExtraFolderName = %q", got)
	}
}
