package cache

import (
	"bytes"
	"container/list"
	"context"
	"io"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Component renders HTML. It is satisfied by templ.Component.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// entry is a cached page.
type entry struct {
	key  string
	html []byte
}

// Pages is an LRU cache of rendered pages. It is safe for concurrent use.
//
// The most recently used pages are at the front of the eviction list.
type Pages struct {
	items      map[string]*list.Element
	eviction   *list.List
	group      singleflight.Group
	onEvict    func(key string)
	maxEntries int
	mu         sync.Mutex
}

// New creates an empty cache.
func New(opts ...Option) *Pages {
	p := &Pages{
		items:      make(map[string]*list.Element),
		eviction:   list.New(),
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns the page cached under key.
// Returns ErrNotFound on a miss. A hit marks the page as recently used.
func (p *Pages) Get(key string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	elem, ok := p.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	p.eviction.MoveToFront(elem)
	return elem.Value.(*entry).html, nil
}

// Render returns the page cached under key, rendering c with ctx on a miss.
// The returned slice is shared and must not be modified.
func (p *Pages) Render(ctx context.Context, key string, c Component) ([]byte, error) {
	if html, err := p.Get(key); err == nil {
		return html, nil
	}

	v, err, _ := p.group.Do(key, func() (any, error) {
		var buf bytes.Buffer
		if err := c.Render(ctx, &buf); err != nil {
			return nil, err
		}
		html := buf.Bytes()
		p.set(key, html)
		return html, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Len returns the number of cached pages.
func (p *Pages) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Clear removes every page.
func (p *Pages) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for elem := p.eviction.Back(); elem != nil; {
		prev := elem.Prev()
		p.removeElement(elem)
		elem = prev
	}
}

func (p *Pages) set(key string, html []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if elem, ok := p.items[key]; ok {
		elem.Value.(*entry).html = html
		p.eviction.MoveToFront(elem)
		return
	}

	if len(p.items) >= p.maxEntries {
		if oldest := p.eviction.Back(); oldest != nil {
			p.removeElement(oldest)
		}
	}
	p.items[key] = p.eviction.PushFront(&entry{key: key, html: html})
}

// removeElement drops elem and reports the eviction.
// Caller must hold the mutex.
func (p *Pages) removeElement(elem *list.Element) {
	p.eviction.Remove(elem)
	e := elem.Value.(*entry)
	delete(p.items, e.key)

	if p.onEvict != nil {
		p.onEvict(e.key)
	}
}
