package handler

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/pkg/grpcjson"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const AttributeServiceName = "omnipos.catalog.v1.AttributeService"

type AttributeServiceServer interface {
	AddAttribute(context.Context, *AddAttributeRequest) (*AttributeResponse, error)
	UpdateAttribute(context.Context, *UpdateAttributeRequest) (*AttributeResponse, error)
	RemoveAttribute(context.Context, *RemoveAttributeRequest) (*emptypb.Empty, error)
	ListAttributes(context.Context, *ByCategoryRequest) (*ListAttributesResponse, error)
	DeleteAttributesByCategory(context.Context, *ByCategoryRequest) (*DeleteByCategoryResponse, error)
}

var AttributeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AttributeServiceName,
	HandlerType: (*AttributeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.UnaryMethod(AttributeServiceName, "AddAttribute", AttributeServiceServer.AddAttribute),
		grpcjson.UnaryMethod(AttributeServiceName, "UpdateAttribute", AttributeServiceServer.UpdateAttribute),
		grpcjson.UnaryMethod(AttributeServiceName, "RemoveAttribute", AttributeServiceServer.RemoveAttribute),
		grpcjson.UnaryMethod(AttributeServiceName, "ListAttributes", AttributeServiceServer.ListAttributes),
		grpcjson.UnaryMethod(AttributeServiceName, "DeleteAttributesByCategory", AttributeServiceServer.DeleteAttributesByCategory),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/catalog/v1/attribute.json",
}

func RegisterAttributeServiceServer(s grpc.ServiceRegistrar, srv AttributeServiceServer) {
	s.RegisterService(&AttributeService_ServiceDesc, srv)
}

type AttributeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAttributeServiceClient(cc grpc.ClientConnInterface) *AttributeServiceClient {
	return &AttributeServiceClient{cc: cc}
}

func (c *AttributeServiceClient) AddAttribute(ctx context.Context, in *AddAttributeRequest, opts ...grpc.CallOption) (*AttributeResponse, error) {
	return grpcjson.Invoke[AttributeResponse](ctx, c.cc, AttributeServiceName, "AddAttribute", in, opts...)
}

func (c *AttributeServiceClient) UpdateAttribute(ctx context.Context, in *UpdateAttributeRequest, opts ...grpc.CallOption) (*AttributeResponse, error) {
	return grpcjson.Invoke[AttributeResponse](ctx, c.cc, AttributeServiceName, "UpdateAttribute", in, opts...)
}

func (c *AttributeServiceClient) RemoveAttribute(ctx context.Context, in *RemoveAttributeRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return grpcjson.Invoke[emptypb.Empty](ctx, c.cc, AttributeServiceName, "RemoveAttribute", in, opts...)
}

func (c *AttributeServiceClient) ListAttributes(ctx context.Context, in *ByCategoryRequest, opts ...grpc.CallOption) (*ListAttributesResponse, error) {
	return grpcjson.Invoke[ListAttributesResponse](ctx, c.cc, AttributeServiceName, "ListAttributes", in, opts...)
}

func (c *AttributeServiceClient) DeleteAttributesByCategory(ctx context.Context, in *ByCategoryRequest, opts ...grpc.CallOption) (*DeleteByCategoryResponse, error) {
	return grpcjson.Invoke[DeleteByCategoryResponse](ctx, c.cc, AttributeServiceName, "DeleteAttributesByCategory", in, opts...)
}
