package extract

import "github.com/rotisserie/eris"

// Document-level failures. Both mean the data set is unavailable; callers must
// surface that once instead of rendering an empty map.
var (
	// ErrMissingSection is returned when the target worksheet or its data
	// table is absent from the document.
	ErrMissingSection = eris.New("extract: required worksheet or table not found")

	// ErrEmptyResult is returned when the document parsed but yielded zero
	// valid location rows.
	ErrEmptyResult = eris.New("extract: document contained no valid location rows")
)
