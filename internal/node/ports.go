package node

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache holds list reads. Implemented by pkg/cache.RedisClient.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) error
}

// Indexer mirrors nodes into the search engine.
type Indexer interface {
	IndexNode(ctx context.Context, tree model.Tree, n *model.Node) error
	DeleteNode(ctx context.Context, tree model.Tree, id string) error
	SearchNodes(ctx context.Context, tree model.Tree, term string, limit int) ([]model.Node, error)
}

// EventPublisher emits node change events after commit.
type EventPublisher interface {
	PublishNodeEvent(ctx context.Context, eventType string, tree model.Tree, n *model.Node) error
}

const (
	EventNodeCreated = "NodeCreated"
	EventNodeUpdated = "NodeUpdated"
	EventNodeDeleted = "NodeDeleted"
)
