// Package cache keeps rendered pages in memory.
//
// A [Pages] cache maps a key, usually locale plus path, to the bytes a
// component rendered. Resources never change while the server runs, so
// entries do not expire; the least recently used entry is evicted once
// the configured capacity is reached.
//
//	pages := cache.New(cache.WithMaxEntries(256))
//
//	html, err := pages.Render(ctx, "fr/community", views.Community(teams))
//
// Concurrent misses for the same key render the component once; the other
// callers wait for and share the result. Render errors are returned to every
// waiting caller and nothing is stored.
package cache
