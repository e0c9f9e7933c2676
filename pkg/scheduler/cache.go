package scheduler

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/robfig/cron/v3"
)

// Cache is a bounded LRU of parsed schedules. safe for concurrent use.
type Cache struct {
	schedules *lru.Cache
	mu        sync.Mutex // lru.Cache is not safe for concurrent use
}

func NewCache(maxEntries int) *Cache {
	return &Cache{
		schedules: lru.New(maxEntries),
	}
}

func (c *Cache) Parse(spec string) (cron.Schedule, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, found := c.schedules.Get(spec); found {
		return cached.(cron.Schedule), nil
	}

	schedule, err := Parse(spec)
	if err != nil {
		return nil, err
	}

	c.schedules.Add(spec, schedule)

	return schedule, nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.schedules.Len()
}
