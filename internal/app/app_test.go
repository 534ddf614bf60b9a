package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/node/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{Driver: database.DriverSQLite, SQLitePath: ":memory:"},
		Redis:    config.RedisConfig{TTL: 60},
		Kafka:    config.KafkaConfig{NodeEventsTopic: "catalog.nodes"},
		Elastic:  config.ElasticsearchConfig{NodeIndex: "catalog_nodes"},
	}
}

func newApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	ctx := context.Background()

	a, err := New(ctx, cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	_, err = database.Migrate(ctx, a.DB)
	require.NoError(t, err)
	return a
}

func TestBuildWithoutOptionalBackends(t *testing.T) {
	a := newApp(t, testConfig())

	assert.Nil(t, a.Redis)
	assert.Nil(t, a.Producer)
	assert.Nil(t, a.Indexer)
	require.Len(t, a.NodeUseCases(), 2)
	assert.Equal(t, model.TreeCategory, a.NodeUseCases()[0].Tree())
	assert.Equal(t, model.TreeProduct, a.NodeUseCases()[1].Tree())

	ctx := context.Background()
	n, err := a.Nodes[model.TreeCategory].AddNode(ctx, &dto.AddNodeInput{
		NameEn: "Apparel", NameFr: "Vêtements", NodeType: model.NodeTypeDepartment,
	})
	require.NoError(t, err)

	roots, err := a.Nodes[model.TreeProduct].GetRootNodes(ctx)
	require.NoError(t, err)
	assert.Empty(t, roots)

	roots, err = a.Nodes[model.TreeCategory].GetRootNodes(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, n.ID, roots[0].ID)
}

func TestBuildWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = mr.Addr()
	a := newApp(t, cfg)
	require.NotNil(t, a.Redis)

	ctx := context.Background()
	_, err := a.Nodes[model.TreeCategory].GetRootNodes(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, mr.Keys())
}

func TestUnreachableRedisIsSkipped(t *testing.T) {
	cfg := testConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = "127.0.0.1:1"
	a := newApp(t, cfg)

	assert.Nil(t, a.Redis)
}

func TestCloseIsIdempotent(t *testing.T) {
	a, err := New(context.Background(), testConfig(), logger.NewNop())
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}
