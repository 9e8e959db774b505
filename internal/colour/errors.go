package colour

import "errors"

// Sentinel error kinds returned by this package. Callers match with
// errors.Is; wrapped variants carry the offending input.
var (
	// ErrInvalidFormat indicates a malformed hex colour string.
	ErrInvalidFormat = errors.New("invalid colour format")

	// ErrUnknownDeficiency indicates an unrecognised colour-vision
	// deficiency type.
	ErrUnknownDeficiency = errors.New("unknown deficiency type")

	// ErrInsufficientColors indicates fewer input colours than an
	// operation requires.
	ErrInsufficientColors = errors.New("insufficient colours")

	// ErrEmptyColorList indicates an operation was given no colours.
	ErrEmptyColorList = errors.New("empty colour list")

	// ErrExtraction wraps image decode or clustering failures during
	// palette extraction.
	ErrExtraction = errors.New("palette extraction failed")
)
