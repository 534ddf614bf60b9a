package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/google/uuid"
)

// Producer is satisfied by broker.KafkaProducer.
type Producer interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type NodeEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Tree      model.Tree  `json:"tree"`
	Payload   *model.Node `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type NodePublisher struct {
	producer Producer
}

func NewNodePublisher(p Producer) *NodePublisher {
	return &NodePublisher{producer: p}
}

// PublishNodeEvent keys events by node id so a node's history stays ordered.
func (p *NodePublisher) PublishNodeEvent(ctx context.Context, eventType string, tree model.Tree, n *model.Node) error {
	raw, err := json.Marshal(NodeEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Tree:      tree,
		Payload:   n,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return p.producer.Publish(ctx, n.ID, raw)
}
