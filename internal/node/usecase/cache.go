package usecase

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/node"
	"go.uber.org/zap"
)

func (uc *nodeUseCase) cacheKey(suffix string) string {
	return "nodes:" + string(uc.Tree()) + ":" + suffix
}

// cachedList serves list reads from the cache when one is configured. Cache
// failures are logged and the database answers instead.
func (uc *nodeUseCase) cachedList(ctx context.Context, suffix string, load func() ([]model.Node, error)) ([]model.Node, error) {
	if uc.cache == nil {
		return load()
	}

	key := uc.cacheKey(suffix)
	var cached []model.Node
	hit, err := uc.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		uc.logger.Warn("node cache read failed", zap.String("key", key), zap.Error(err))
	} else if hit && cached != nil {
		return cached, nil
	}

	nodes, err := load()
	if err != nil {
		return nil, err
	}
	// A reader that loaded before a concurrent write can store its list after
	// that write invalidated the key. The stale entry lives until cacheTTL.
	if err := uc.cache.SetJSON(ctx, key, nodes, uc.cacheTTL); err != nil {
		uc.logger.Warn("node cache write failed", zap.String("key", key), zap.Error(err))
	}
	return nodes, nil
}

// afterWrite runs the post-commit side effects. None of them can fail the write.
func (uc *nodeUseCase) afterWrite(ctx context.Context, eventType string, n *model.Node) {
	if uc.cache != nil {
		if err := uc.cache.DeletePattern(ctx, uc.cacheKey("*")); err != nil {
			uc.logger.Error("failed to invalidate node cache", zap.Error(err))
		}
	}

	if uc.index != nil {
		var err error
		if eventType == node.EventNodeDeleted {
			err = uc.index.DeleteNode(ctx, uc.Tree(), n.ID)
		} else {
			err = uc.index.IndexNode(ctx, uc.Tree(), n)
		}
		if err != nil {
			uc.logger.Error("failed to sync node index", zap.String("node_id", n.ID), zap.Error(err))
		}
	}

	if uc.events != nil {
		if err := uc.events.PublishNodeEvent(ctx, eventType, uc.Tree(), n); err != nil {
			uc.logger.Error("failed to publish node event",
				zap.String("event_type", eventType),
				zap.String("node_id", n.ID),
				zap.Error(err),
			)
		}
	}
}
