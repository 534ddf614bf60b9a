package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deletes []string
	ttls    map[string]time.Duration
	failGet bool
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return false, errors.New("cache down")
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) SetJSON(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) DeletePattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type fakeIndex struct {
	indexed []string
	deleted []string
	hits    []model.Node
	err     error
}

func (f *fakeIndex) IndexNode(_ context.Context, _ model.Tree, n *model.Node) error {
	f.indexed = append(f.indexed, n.ID)
	return f.err
}

func (f *fakeIndex) DeleteNode(_ context.Context, _ model.Tree, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeIndex) SearchNodes(_ context.Context, _ model.Tree, _ string, _ int) ([]model.Node, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

type recordedEvent struct {
	eventType string
	nodeID    string
}

type fakePublisher struct {
	events []recordedEvent
	err    error
}

func (p *fakePublisher) PublishNodeEvent(_ context.Context, eventType string, _ model.Tree, n *model.Node) error {
	p.events = append(p.events, recordedEvent{eventType: eventType, nodeID: n.ID})
	return p.err
}
