package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ node.EventPublisher = (*NodePublisher)(nil)

type captured struct {
	key   string
	value []byte
}

type fakeProducer struct {
	msgs []captured
}

func (f *fakeProducer) Publish(_ context.Context, key string, value []byte) error {
	f.msgs = append(f.msgs, captured{key: key, value: value})
	return nil
}

func TestPublishNodeEvent(t *testing.T) {
	fp := &fakeProducer{}
	p := NewNodePublisher(fp)

	n := &model.Node{BaseModel: model.BaseModel{ID: "n1"}, NameEn: "Books", NodeType: model.NodeTypeDepartment}
	require.NoError(t, p.PublishNodeEvent(context.Background(), node.EventNodeCreated, model.TreeCategory, n))

	require.Len(t, fp.msgs, 1)
	assert.Equal(t, "n1", fp.msgs[0].key)

	var evt NodeEvent
	require.NoError(t, json.Unmarshal(fp.msgs[0].value, &evt))
	assert.Equal(t, node.EventNodeCreated, evt.EventType)
	assert.Equal(t, model.TreeCategory, evt.Tree)
	assert.Equal(t, "Books", evt.Payload.NameEn)
	assert.NotEmpty(t, evt.EventID)
	assert.False(t, evt.Timestamp.IsZero())
}
