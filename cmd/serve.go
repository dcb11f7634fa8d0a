package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/dhank77/undangan.love/internal/application"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/internal/infra/auth"
	"github.com/dhank77/undangan.love/internal/infra/broker"
	"github.com/dhank77/undangan.love/internal/infra/cache"
	"github.com/dhank77/undangan.love/internal/infra/catalog"
	ai "github.com/dhank77/undangan.love/internal/infra/client/openai"
	"github.com/dhank77/undangan.love/internal/infra/config"
	"github.com/dhank77/undangan.love/internal/infra/db"
	"github.com/dhank77/undangan.love/internal/infra/db/repo"
	"github.com/dhank77/undangan.love/internal/infra/metrics"
	"github.com/dhank77/undangan.love/internal/infra/phone"
	"github.com/dhank77/undangan.love/internal/infra/storage"
	"github.com/dhank77/undangan.love/internal/presentation/rest"
	"github.com/dhank77/undangan.love/internal/presentation/scheduler"
	"github.com/spf13/cobra"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the outbox relay",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
}

func serve(ctx context.Context) error {
	log := newLogger()

	// DB
	uowFactory, err := connect(ctx, log)
	if err != nil {
		return err
	}
	defer uowFactory.Pool.Close()
	if migrateOnStart {
		if _, err = db.Migrate(ctx, uowFactory); err != nil {
			return err
		}
	}
	store := repo.NewStore(uowFactory)

	// Configs
	serverConfig := config.NewServerConfig()
	outboxConfig := config.NewOutboxConfig()
	rsvpConfig := config.NewRSVPConfig()
	cacheConfig := cache.NewConfig()
	storageConfig := storage.NewConfig()
	brokerConfig := broker.NewConfig()
	brokerConfig.Topic = outboxConfig.Topic
	m := metrics.New()

	// Cache
	var previews interfaces.PreviewCache = cache.Noop{}
	if cacheConfig.Enabled() {
		redisClient := cache.NewRedisClient(cacheConfig)
		defer redisClient.Close()
		previews = cache.NewPreviewCache(redisClient, cacheConfig.TTL)
	} else {
		log.Info("no redis configured, template previews are not cached")
	}

	// AWS
	var snapshots interfaces.SnapshotStorage
	if storageConfig.Enabled() {
		cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(storageConfig.Region))
		if err != nil {
			return err
		}
		s3Storage := storage.NewStorage(cfg, storageConfig)
		if err = s3Storage.EnsureBucket(ctx); err != nil {
			log.WithError(err).Warn("snapshot bucket is not reachable")
		}
		snapshots = s3Storage
	} else {
		log.Info("no snapshot bucket configured, rendered pages are not archived")
	}

	components, err := catalog.New()
	if err != nil {
		return err
	}

	commands := application.NewCollection(application.Deps{
		Store:    store,
		Cache:    previews,
		Catalog:  components,
		Enricher: ai.NewOpenAIClient(ai.NewOpenAIConfig()),
		Phone:    phone.NewNormalizer(rsvpConfig.DefaultRegion),
		Pages:    config.NewPaginationConfig(),
	})

	app := rest.NewApp(rest.AppDeps{
		Server:   rest.NewServer(commands),
		Identity: auth.NewIdentityProvider(auth.NewConfig()),
		Metrics:  m,
		Logger:   log,
		Config:   serverConfig,
	})

	publisher := broker.NewPublisher(brokerConfig, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.WithError(err).Warn("err closing publisher")
		}
	}()
	outboxPoller := scheduler.NewOutboxPoller(uowFactory, publisher, application.NewProcessors(store, snapshots), m, outboxConfig)
	go outboxPoller.Start()

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(":" + serverConfig.Port)
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case <-c:
		log.Info("gracefully shutting down")
	case err = <-listenErr:
		log.WithError(err).Error("server stopped")
	}

	if errShutdown := app.ShutdownWithTimeout(serverConfig.ShutdownTimeout); errShutdown != nil {
		log.WithError(errShutdown).Warn("err shutting down server")
	}
	outboxPoller.Stop()

	log.Info("fiber was successfully shut down")
	return err
}
