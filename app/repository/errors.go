package repository

import "errors"

// ErrNotFound is returned whenever a record does not exist. Every
// implementation translates its driver-level miss into this sentinel so
// callers can tell "absent" apart from an empty collection.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateSlug is returned when the unique slug index rejects an
// insert or update. The note service retries once with a regenerated
// slug before giving up.
var ErrDuplicateSlug = errors.New("slug already exists")
