package request

import (
	"testing"

	"screenprint_estimator/internal/domain/entities"
)

func TestPartRequest_ToSubmission(t *testing.T) {
	r := PartRequest{
		Brand:          " Gildan ",
		ColorClass:     "Dark",
		PrintLocations: 2,
		ColorCount:     3,
		Quantities:     map[string]int{"T-Shirt ": 10, "Hoodie": 0},
	}
	s := r.ToSubmission()
	if s.Brand != "Gildan" || s.ColorClass != entities.ColorClassDark {
		t.Fatalf("unexpected submission: %+v", s)
	}
	if s.Quantities["T-Shirt"] != 10 || len(s.Quantities) != 2 {
		t.Fatalf("unexpected quantities: %+v", s.Quantities)
	}
	if s.PrintLocations != 2 || s.ColorCount != 3 {
		t.Fatalf("unexpected options: %+v", s)
	}
}

func TestPartRequest_ToSubmission_MergesPaddedKeys(t *testing.T) {
	r := PartRequest{Quantities: map[string]int{"T-Shirt": 4, "T-Shirt ": 6, " T-Shirt": 2, "Hoodie": 1}}
	for i := 0; i < 20; i++ {
		s := r.ToSubmission()
		if s.Quantities["T-Shirt"] != 12 || s.Quantities["Hoodie"] != 1 || len(s.Quantities) != 2 {
			t.Fatalf("expected padded keys summed, got %+v", s.Quantities)
		}
	}
}

func TestPartRequest_ResolveArtwork(t *testing.T) {
	if (PartRequest{}).ResolveArtwork() != nil {
		t.Fatalf("expected nil without artwork")
	}
	if (PartRequest{Artwork: &ArtworkRequest{Multiplier: 3}}).ResolveArtwork() != nil {
		t.Fatalf("expected nil without sameArtwork answer")
	}

	same := false
	got := PartRequest{Artwork: &ArtworkRequest{SameArtwork: &same, Multiplier: 3}}.ResolveArtwork()
	if got == nil || got.SameArtwork || got.Multiplier != 3 {
		t.Fatalf("unexpected decision: %+v", got)
	}
}

func TestPinRequest_ResolveName(t *testing.T) {
	if got := (PinRequest{Name: "  Team shirts "}).ResolveName(); got != "Team shirts" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}
