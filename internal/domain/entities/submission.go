package entities

// Submission is one pass through the estimate form.
//
// Zero values mean "not provided": PrintLocations and ColorCount start at 1
// and Brand/ColorClass must be non-empty, so the zero value is never valid.
// Quantities is keyed by garment name; absent garments count as zero.
type Submission struct {
	Brand          string
	ColorClass     ColorClass
	PrintLocations int
	ColorCount     int
	Quantities     map[string]int
}
