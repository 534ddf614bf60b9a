package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/pkg/grpcjson"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const NodeServiceName = "omnipos.catalog.v1.NodeService"

type NodeServiceServer interface {
	AddNode(context.Context, *AddNodeRequest) (*NodeResponse, error)
	UpdateNode(context.Context, *UpdateNodeRequest) (*NodeResponse, error)
	DeleteNode(context.Context, *NodeRequest) (*emptypb.Empty, error)
	GetNode(context.Context, *NodeRequest) (*NodeResponse, error)
	ListChildren(context.Context, *ListChildrenRequest) (*ListNodesResponse, error)
	ListRootNodes(context.Context, *ListRootNodesRequest) (*ListNodesResponse, error)
	ListNodesByType(context.Context, *ListNodesByTypeRequest) (*ListNodesResponse, error)
	SearchNodes(context.Context, *SearchNodesRequest) (*ListNodesResponse, error)
	AddNodeWithAttributes(context.Context, *AddNodeWithAttributesRequest) (*AddNodeWithAttributesResponse, error)
	AddMultipleNodesWithAttributes(context.Context, *AddMultipleNodesRequest) (*ListNodesResponse, error)
}

func unary[Req any, Resp any](name string, call func(NodeServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodDesc {
	return grpcjson.UnaryMethod(NodeServiceName, name, call)
}

var NodeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: NodeServiceName,
	HandlerType: (*NodeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("AddNode", NodeServiceServer.AddNode),
		unary("UpdateNode", NodeServiceServer.UpdateNode),
		unary("DeleteNode", NodeServiceServer.DeleteNode),
		unary("GetNode", NodeServiceServer.GetNode),
		unary("ListChildren", NodeServiceServer.ListChildren),
		unary("ListRootNodes", NodeServiceServer.ListRootNodes),
		unary("ListNodesByType", NodeServiceServer.ListNodesByType),
		unary("SearchNodes", NodeServiceServer.SearchNodes),
		unary("AddNodeWithAttributes", NodeServiceServer.AddNodeWithAttributes),
		unary("AddMultipleNodesWithAttributes", NodeServiceServer.AddMultipleNodesWithAttributes),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/catalog/v1/node.json",
}

func RegisterNodeServiceServer(s grpc.ServiceRegistrar, srv NodeServiceServer) {
	s.RegisterService(&NodeService_ServiceDesc, srv)
}

// NodeServiceClient calls NodeService with the JSON codec.
type NodeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNodeServiceClient(cc grpc.ClientConnInterface) *NodeServiceClient {
	return &NodeServiceClient{cc: cc}
}

func (c *NodeServiceClient) AddNode(ctx context.Context, in *AddNodeRequest, opts ...grpc.CallOption) (*NodeResponse, error) {
	return grpcjson.Invoke[NodeResponse](ctx, c.cc, NodeServiceName, "AddNode", in, opts...)
}

func (c *NodeServiceClient) UpdateNode(ctx context.Context, in *UpdateNodeRequest, opts ...grpc.CallOption) (*NodeResponse, error) {
	return grpcjson.Invoke[NodeResponse](ctx, c.cc, NodeServiceName, "UpdateNode", in, opts...)
}

func (c *NodeServiceClient) DeleteNode(ctx context.Context, in *NodeRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return grpcjson.Invoke[emptypb.Empty](ctx, c.cc, NodeServiceName, "DeleteNode", in, opts...)
}

func (c *NodeServiceClient) GetNode(ctx context.Context, in *NodeRequest, opts ...grpc.CallOption) (*NodeResponse, error) {
	return grpcjson.Invoke[NodeResponse](ctx, c.cc, NodeServiceName, "GetNode", in, opts...)
}

func (c *NodeServiceClient) ListChildren(ctx context.Context, in *ListChildrenRequest, opts ...grpc.CallOption) (*ListNodesResponse, error) {
	return grpcjson.Invoke[ListNodesResponse](ctx, c.cc, NodeServiceName, "ListChildren", in, opts...)
}

func (c *NodeServiceClient) ListRootNodes(ctx context.Context, in *ListRootNodesRequest, opts ...grpc.CallOption) (*ListNodesResponse, error) {
	return grpcjson.Invoke[ListNodesResponse](ctx, c.cc, NodeServiceName, "ListRootNodes", in, opts...)
}

func (c *NodeServiceClient) ListNodesByType(ctx context.Context, in *ListNodesByTypeRequest, opts ...grpc.CallOption) (*ListNodesResponse, error) {
	return grpcjson.Invoke[ListNodesResponse](ctx, c.cc, NodeServiceName, "ListNodesByType", in, opts...)
}

func (c *NodeServiceClient) SearchNodes(ctx context.Context, in *SearchNodesRequest, opts ...grpc.CallOption) (*ListNodesResponse, error) {
	return grpcjson.Invoke[ListNodesResponse](ctx, c.cc, NodeServiceName, "SearchNodes", in, opts...)
}

func (c *NodeServiceClient) AddNodeWithAttributes(ctx context.Context, in *AddNodeWithAttributesRequest, opts ...grpc.CallOption) (*AddNodeWithAttributesResponse, error) {
	return grpcjson.Invoke[AddNodeWithAttributesResponse](ctx, c.cc, NodeServiceName, "AddNodeWithAttributes", in, opts...)
}

func (c *NodeServiceClient) AddMultipleNodesWithAttributes(ctx context.Context, in *AddMultipleNodesRequest, opts ...grpc.CallOption) (*ListNodesResponse, error) {
	return grpcjson.Invoke[ListNodesResponse](ctx, c.cc, NodeServiceName, "AddMultipleNodesWithAttributes", in, opts...)
}
