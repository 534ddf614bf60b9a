package grpcjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type payload struct {
	ID    string `json:"id"`
	Count *int   `json:"count,omitempty"`
}

func TestRegistered(t *testing.T) {
	assert.NotNil(t, encoding.GetCodec(Name))
}

func TestStructRoundTrip(t *testing.T) {
	c := Codec{}
	data, err := c.Marshal(&payload{ID: "n1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"n1"}`, string(data))

	var out payload
	require.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, "n1", out.ID)
	assert.Nil(t, out.Count)
}

func TestProtoMessages(t *testing.T) {
	c := Codec{}

	data, err := c.Marshal(wrapperspb.String("hello"))
	require.NoError(t, err)
	assert.JSONEq(t, `"hello"`, string(data))

	got := &wrapperspb.StringValue{}
	require.NoError(t, c.Unmarshal(data, got))
	assert.Equal(t, "hello", got.GetValue())

	require.NoError(t, c.Unmarshal(nil, &emptypb.Empty{}))
}
