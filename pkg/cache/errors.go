package cache

import "errors"

// ErrNotFound is returned when a key is not cached.
var ErrNotFound = errors.New("cache: entry not found")
