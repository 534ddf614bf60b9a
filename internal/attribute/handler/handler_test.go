package handler

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/attribute/repository"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute/usecase"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	noderepo "github.com/fekuna/omnipos-catalog-service/internal/node/repository"
	"github.com/fekuna/omnipos-catalog-service/internal/testutil"
	"github.com/fekuna/omnipos-catalog-service/pkg/i18n"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAttributeService(t *testing.T) {
	db := testutil.NewDB(t)
	dept := testutil.InsertNode(t, db, "category_nodes", "Department", nil, "Dept")

	tr, err := i18n.New("en")
	require.NoError(t, err)
	nodes, err := noderepo.NewPGRepository(db, model.TreeCategory)
	require.NoError(t, err)
	h := NewAttributeHandler(usecase.NewAttributeUseCase(repository.NewPGRepository(db), nodes, logger.NewNop()), tr, logger.NewNop())

	conn := testutil.NewGRPCConn(t, func(s *grpc.Server) { RegisterAttributeServiceServer(s, h) })
	client := NewAttributeServiceClient(conn)
	ctx := context.Background()

	one := int32(1)
	for _, req := range []*AddAttributeRequest{
		{Kind: "feature", CategoryNodeID: dept, NameEn: "Zipper", NameFr: "Fermeture", AttributeType: "bool"},
		{Kind: "feature", CategoryNodeID: dept, NameEn: "Colour", NameFr: "Couleur", AttributeType: "enum", SortOrder: &one},
		{Kind: "feature", CategoryNodeID: dept, NameEn: "Brand", NameFr: "Marque", AttributeType: "string"},
	} {
		_, err := client.AddAttribute(ctx, req)
		require.NoError(t, err)
	}

	list, err := client.ListAttributes(ctx, &ByCategoryRequest{Kind: "feature", CategoryNodeID: dept})
	require.NoError(t, err)
	names := []string{}
	for _, a := range list.Attributes {
		names = append(names, a.NameEn)
	}
	assert.Equal(t, []string{"Colour", "Brand", "Zipper"}, names)

	updated, err := client.UpdateAttribute(ctx, &UpdateAttributeRequest{
		ID: list.Attributes[2].ID, Kind: "feature", NameEn: "Zip", NameFr: "Zip", AttributeType: "bool",
	})
	require.NoError(t, err)
	assert.Equal(t, "Zip", updated.Attribute.NameEn)

	_, err = client.RemoveAttribute(ctx, &RemoveAttributeRequest{Kind: "feature", ID: updated.Attribute.ID})
	require.NoError(t, err)
	_, err = client.RemoveAttribute(ctx, &RemoveAttributeRequest{Kind: "feature", ID: updated.Attribute.ID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	removed, err := client.DeleteAttributesByCategory(ctx, &ByCategoryRequest{Kind: "feature", CategoryNodeID: dept})
	require.NoError(t, err)
	assert.True(t, removed.Removed)

	removed, err = client.DeleteAttributesByCategory(ctx, &ByCategoryRequest{Kind: "feature", CategoryNodeID: dept})
	require.NoError(t, err)
	assert.False(t, removed.Removed)

	_, err = client.ListAttributes(ctx, &ByCategoryRequest{Kind: "bogus", CategoryNodeID: dept})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.AddAttribute(ctx, &AddAttributeRequest{
		Kind: "feature", CategoryNodeID: "missing", NameEn: "Lost", NameFr: "Perdu", AttributeType: "string",
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Category node missing does not exist.", status.Convert(err).Message())
}
