package domain

import "errors"

// ErrNotFound is returned when a requested destination does not exist in the catalog.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a domain rule (e.g. a destination
// without a link, or a slide index outside the indicator range).
// Handlers should map this to HTTP 4xx or ignore it where the page has a safe default.
var ErrValidation = errors.New("validation error")
