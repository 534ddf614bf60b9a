// Package app wires repositories, use cases and optional infrastructure from config.
// Both the gRPC server and catalogctl start from it.
package app

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute"
	attrRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/attribute/repository"
	attrUCPkg "github.com/fekuna/omnipos-catalog-service/internal/attribute/usecase"
	itemRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/item/repository"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/node"
	"github.com/fekuna/omnipos-catalog-service/internal/node/events"
	"github.com/fekuna/omnipos-catalog-service/internal/node/index"
	nodeRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/node/repository"
	nodeUCPkg "github.com/fekuna/omnipos-catalog-service/internal/node/usecase"
	sessionRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/session/repository"
	"github.com/fekuna/omnipos-catalog-service/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/search"
	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Logger logger.ZapLogger
	DB     *sqlx.DB

	// Nil when disabled or unreachable.
	Redis    *cache.RedisClient
	Producer *broker.KafkaProducer
	Indexer  *index.NodeIndexer

	Items      *itemRepoPkg.PGRepository
	Sessions   *sessionRepoPkg.PGRepository
	Attributes attribute.UseCase
	Nodes      map[model.Tree]node.UseCase

	closers []func() error
}

func DatabaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		SQLitePath:      cfg.Database.SQLitePath,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second,
	}
}

// New connects to the database and builds every use case. Redis, Kafka and
// Elasticsearch are optional: a disabled or unreachable backend is logged and skipped.
func New(ctx context.Context, cfg *config.Config, log logger.ZapLogger) (*App, error) {
	db, err := database.Open(DatabaseConfig(cfg))
	if err != nil {
		return nil, err
	}
	log.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	return Build(ctx, cfg, log, db), nil
}

// Build wires an already opened database. The App takes ownership of db.
func Build(ctx context.Context, cfg *config.Config, log logger.ZapLogger, db *sqlx.DB) *App {
	a := &App{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Items:    itemRepoPkg.NewPGRepository(db),
		Sessions: sessionRepoPkg.NewPGRepository(db),
		Nodes:    make(map[model.Tree]node.UseCase, 2),
	}
	a.closers = append(a.closers, db.Close)

	a.connectRedis()
	a.connectKafka()
	a.connectElasticsearch(ctx)

	attrRepo := attrRepoPkg.NewPGRepository(db)

	txm := database.NewTxManager(db)
	for _, tree := range []model.Tree{model.TreeCategory, model.TreeProduct} {
		// Trees are fixed above, so the only error (unknown tree) cannot happen.
		repo, _ := nodeRepoPkg.NewPGRepository(db, tree)

		opts := a.nodeOptions()
		if tree == model.TreeCategory {
			opts = append(opts, nodeUCPkg.WithAttributes(attrRepo))
			a.Attributes = attrUCPkg.NewAttributeUseCase(attrRepo, repo, log)
		}
		a.Nodes[tree] = nodeUCPkg.NewNodeUseCase(repo, a.Items, txm, log, opts...)
	}
	return a
}

func (a *App) nodeOptions() []nodeUCPkg.Option {
	var opts []nodeUCPkg.Option
	if a.Redis != nil {
		opts = append(opts, nodeUCPkg.WithCache(a.Redis, time.Duration(a.Config.Redis.TTL)*time.Second))
	}
	if a.Indexer != nil {
		opts = append(opts, nodeUCPkg.WithIndexer(a.Indexer))
	}
	if a.Producer != nil {
		opts = append(opts, nodeUCPkg.WithEvents(events.NewNodePublisher(a.Producer)))
	}
	return opts
}

func (a *App) connectRedis() {
	cfg := a.Config.Redis
	if !cfg.Enabled {
		return
	}
	client, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		a.Logger.Warn("Could not connect to Redis, node cache disabled", zap.Error(err))
		return
	}
	a.Redis = client
	a.closers = append(a.closers, client.Close)
	a.Logger.Info("Connected to Redis", zap.String("addr", cfg.Addr))
}

func (a *App) connectKafka() {
	cfg := a.Config.Kafka
	if !cfg.Enabled {
		return
	}
	a.Producer = broker.NewProducer(&broker.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.NodeEventsTopic,
	})
	a.closers = append(a.closers, a.Producer.Close)
	a.Logger.Info("Kafka producer ready", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.NodeEventsTopic))
}

func (a *App) connectElasticsearch(ctx context.Context) {
	cfg := a.Config.Elastic
	if !cfg.Enabled {
		return
	}
	client, err := search.NewClient(&search.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		a.Logger.Warn("Could not connect to Elasticsearch, node search falls back to the database", zap.Error(err))
		return
	}

	idx := index.NewNodeIndexer(client, cfg.NodeIndex)
	if err := idx.EnsureIndex(ctx); err != nil {
		a.Logger.Warn("Could not create node index", zap.String("index", cfg.NodeIndex), zap.Error(err))
		return
	}
	a.Indexer = idx
	a.Logger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Addresses))
}

// NewOrderConsumer opens a reader on the orders topic. The caller closes it.
func (a *App) NewOrderConsumer() *broker.KafkaConsumer {
	return broker.NewConsumer(&broker.Config{
		Brokers: a.Config.Kafka.Brokers,
		Topic:   a.Config.Kafka.OrdersTopic,
		GroupID: a.Config.Kafka.GroupID,
	})
}

func (a *App) NodeUseCases() []node.UseCase {
	return []node.UseCase{a.Nodes[model.TreeCategory], a.Nodes[model.TreeProduct]}
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	return err
}
