package usecase

import (
	"errors"
	"strings"
)

// ValidationError lists submission fields that are missing or out of range.
// Fields use request names: brand, colorClass, printLocations, colorCount and
// quantities.<Garment>.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Please fill in the following fields: " + strings.Join(e.Fields, ", ")
}

// NegativeQuantityError names every garment submitted with a quantity below zero.
type NegativeQuantityError struct {
	Garments []string
}

func (e *NegativeQuantityError) Error() string {
	return "Quantity cannot be negative for: " + strings.Join(e.Garments, ", ")
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNegativeQuantityError(err error) bool {
	var ne *NegativeQuantityError
	return errors.As(err, &ne)
}
