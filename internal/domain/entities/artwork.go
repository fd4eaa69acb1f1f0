package entities

// MinDistinctArtworks is the smallest fee multiplier once placements
// carry different artwork.
const MinDistinctArtworks = 2

// ArtworkDecision is the answer to "is the artwork the same for each placement?".
// It is only asked when a design has more than one print location.
//
// Multiplier is the number of unique artworks the user entered; it is only
// consulted when SameArtwork is false and there are more than two placements.
type ArtworkDecision struct {
	SameArtwork bool
	Multiplier  int
}

// NeedsArtworkDecision reports whether a submission with the given number of
// print locations must go through the artwork question before pricing.
func NeedsArtworkDecision(printLocations int) bool {
	return printLocations > 1
}

// AsksUniqueArtworkCount reports whether the unique-artwork count is a user
// choice. With two placements and different artwork the answer is always 2.
func AsksUniqueArtworkCount(printLocations int) bool {
	return printLocations > MinDistinctArtworks
}

// FeeMultiplier resolves the screen-fee multiplier for a batch.
func (d ArtworkDecision) FeeMultiplier(printLocations int) int {
	if d.SameArtwork {
		return 1
	}
	if !AsksUniqueArtworkCount(printLocations) {
		return MinDistinctArtworks
	}
	m := d.Multiplier
	if m < MinDistinctArtworks {
		m = MinDistinctArtworks
	}
	if m > printLocations {
		m = printLocations
	}
	return m
}
