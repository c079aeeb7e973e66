package cache

// DefaultMaxEntries bounds the cache when no limit is configured.
const DefaultMaxEntries = 256

// Option configures a Pages cache.
type Option func(*Pages)

// WithMaxEntries sets the maximum number of cached pages. When the limit is
// reached, the least recently used page is evicted. Non-positive values keep
// the default.
func WithMaxEntries(n int) Option {
	return func(p *Pages) {
		if n > 0 {
			p.maxEntries = n
		}
	}
}

// WithEvictCallback sets a function called with the key of every evicted
// page.
func WithEvictCallback(fn func(key string)) Option {
	return func(p *Pages) {
		p.onEvict = fn
	}
}
