package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventOrderPlaced = "OrderPlaced"

	dedupTTL = 24 * time.Hour
)

// MessageReader is satisfied by broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StockAdjuster interface {
	AdjustStock(ctx context.Context, variantID string, delta int) (*model.ItemVariant, error)
}

// Locker marks events as handled. cache.RedisClient satisfies it.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

type OrderListener struct {
	consumer   MessageReader
	stock      StockAdjuster
	locks      Locker
	logger     logger.ZapLogger
	retryDelay time.Duration
}

// NewOrderListener builds a listener. locks may be nil, in which case redelivered
// events are applied again.
func NewOrderListener(consumer MessageReader, stock StockAdjuster, locks Locker, log logger.ZapLogger) *OrderListener {
	return &OrderListener{
		consumer:   consumer,
		stock:      stock,
		locks:      locks,
		logger:     log,
		retryDelay: time.Second,
	}
}

// Start consumes until ctx is cancelled.
func (l *OrderListener) Start(ctx context.Context) {
	l.logger.Info("Starting order Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping order Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.retryDelay):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type OrderPlacedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID        string             `json:"id"`
	CompanyID string             `json:"company_id"`
	UserID    string             `json:"user_id"`
	Items     []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ItemID    string `json:"item_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

func (l *OrderListener) processMessage(ctx context.Context, value []byte) {
	var event OrderPlacedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventOrderPlaced {
		return
	}

	if l.locks != nil && event.EventID != "" {
		first, err := l.locks.AcquireLock(ctx, "order-event:"+event.EventID, event.Payload.ID, dedupTTL)
		if err != nil {
			l.logger.Warn("Failed to record event, processing anyway", zap.String("event_id", event.EventID), zap.Error(err))
		} else if !first {
			l.logger.Debug("Skipping duplicate event", zap.String("event_id", event.EventID))
			return
		}
	}

	l.logger.Info("Processing OrderPlaced event", zap.String("order_id", event.Payload.ID))

	for _, line := range event.Payload.Items {
		if line.VariantID == "" || line.Quantity <= 0 {
			continue
		}
		if _, err := l.stock.AdjustStock(ctx, line.VariantID, -line.Quantity); err != nil {
			l.logger.Error("Failed to adjust stock for order line",
				zap.String("order_id", event.Payload.ID),
				zap.String("variant_id", line.VariantID),
				zap.Int("quantity", line.Quantity),
				zap.Error(err),
			)
		}
	}
}
