package request

import (
	"strings"

	"screenprint_estimator/internal/domain/entities"
)

// ArtworkRequest answers the artwork question for multi-location prints.
type ArtworkRequest struct {
	SameArtwork *bool `json:"sameArtwork" binding:"required"`
	Multiplier  int   `json:"multiplier" binding:"omitempty,min=0"`
}

// PartRequest is one submission of the estimate form.
//
// Required fields are checked by the use case so every missing one can be
// reported at once; binding only rejects malformed payloads.
type PartRequest struct {
	Brand          string          `json:"brand"`
	ColorClass     string          `json:"colorClass"`
	PrintLocations int             `json:"printLocations"`
	ColorCount     int             `json:"colorCount"`
	Quantities     map[string]int  `json:"quantities"`
	Artwork        *ArtworkRequest `json:"artwork"`
}

func (r PartRequest) ToSubmission() entities.Submission {
	// Keys that only differ by surrounding spaces name the same garment, so
	// their quantities are added together.
	quantities := make(map[string]int, len(r.Quantities))
	for name, q := range r.Quantities {
		quantities[strings.TrimSpace(name)] += q
	}
	return entities.Submission{
		Brand:          strings.TrimSpace(r.Brand),
		ColorClass:     entities.ColorClass(strings.ToLower(strings.TrimSpace(r.ColorClass))),
		PrintLocations: r.PrintLocations,
		ColorCount:     r.ColorCount,
		Quantities:     quantities,
	}
}

// ResolveArtwork returns nil when the client has not answered the artwork question.
func (r PartRequest) ResolveArtwork() *entities.ArtworkDecision {
	if r.Artwork == nil || r.Artwork.SameArtwork == nil {
		return nil
	}
	return &entities.ArtworkDecision{
		SameArtwork: *r.Artwork.SameArtwork,
		Multiplier:  r.Artwork.Multiplier,
	}
}
