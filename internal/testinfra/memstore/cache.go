package memstore

import (
	"context"
	"sync"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
)

type Cache struct {
	mu      sync.Mutex
	entries map[uint64]string
	Hits    int
}

var _ interfaces.PreviewCache = (*Cache)(nil)

func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]string)}
}

func (c *Cache) Get(_ context.Context, templateID uint64) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	html, ok := c.entries[templateID]
	if ok {
		c.Hits++
	}
	return html, ok, nil
}

func (c *Cache) Set(_ context.Context, templateID uint64, html string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[templateID] = html
	return nil
}

func (c *Cache) Invalidate(_ context.Context, templateID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, templateID)
	return nil
}
