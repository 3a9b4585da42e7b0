package extras

import "testing"

func TestDetectLabelKeywords(t *testing.T) {
	cases := []struct {
		title     string
		wantText  string
		wantTag   string
		wantFound bool
	}{
		{"Official Trailer", "TRAILER", "", true},
		{"Making Of Part 2", "MAKING OF", "", true},
		{"Cast Interview #3", "INTERVIEW #03", "", true},
		{"Inside the Episode 4", "INSIDE THE EPISODE", "-E04", true},
		{"Blooper Reel", "BLOOPERS", "", true},
		{"Season 2 Recap", "RECAP", "S02", true},
		{"Staffel 10 Trailer", "TRAILER", "S10", true},
		{"Just a normal title", "", "", false},
	}
	for _, tc := range cases {
		got, found := DetectLabel(tc.title)
		if found != tc.wantFound {
			t.Errorf("DetectLabel(%q) found = %v, want %v", tc.title, found, tc.wantFound)
			continue
		}
		if !found {
			continue
		}
		if got.Text != tc.wantText {
			t.Errorf("DetectLabel(%q) text = %q, want %q", tc.title, got.Text, tc.wantText)
		}
		if got.SeasonTag != tc.wantTag {
			t.Errorf("DetectLabel(%q) tag = %q, want %q", tc.title, got.SeasonTag, tc.wantTag)
		}
	}
}

func TestDetectLabelCustomQuoted(t *testing.T) {
	got, found := DetectLabel("Something ''Director Cut'' here")
	if !found {
		t.Fatal("expected custom label to be detected")
	}
	if got.Text != "DIRECTOR CUT" {
		t.Fatalf("unexpected text: %q", got.Text)
	}
}

func TestDetectLabelFallbacks(t *testing.T) {
	got, found := DetectLabel("Season 3 Extra Content")
	if !found {
		t.Fatal("expected season reference to produce a fallback label")
	}
	if got.Text != "SPECIAL" || got.SeasonTag != "S03" {
		t.Fatalf("unexpected fallback: %+v", got)
	}

	got, found = DetectLabel("Extra Content #7")
	if !found {
		t.Fatal("expected counter to produce a fallback label")
	}
	if got.Text != "SPECIAL #07" || got.SeasonTag != "" {
		t.Fatalf("unexpected counter fallback: %+v", got)
	}
}

func TestDetectLabelSeasonAndEpisodeTag(t *testing.T) {
	got, found := DetectLabel("Season 2 Episode 5 Preview")
	if !found {
		t.Fatal("expected preview label")
	}
	if got.Text != "PREVIEW" {
		t.Fatalf("unexpected text: %q", got.Text)
	}
	if got.SeasonTag != "S02-E05" {
		t.Fatalf("unexpected tag: %q", got.SeasonTag)
	}
}
