package bootstrap

import (
	"context"
	"log"
	"path/filepath"

	"careervr-be/internal/config"
	"careervr-be/internal/constant"
	"careervr-be/internal/controller"
	"careervr-be/internal/dto"
	"careervr-be/internal/pkg/logger"
	"careervr-be/internal/repository/contract"
	"careervr-be/internal/repository/file"
	"careervr-be/internal/repository/memory"
	"careervr-be/internal/repository/redisstore"
	"careervr-be/internal/service"
	careerEvents "careervr-be/pkg/career/events"
	pkgEvents "careervr-be/pkg/events"
	"careervr-be/pkg/llm"
	"careervr-be/pkg/llm/dify"
	pktNats "careervr-be/pkg/nats"
	"careervr-be/pkg/sheet"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	CareerController  controller.ICareerController
	CatalogController controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

// Options replaces infrastructure in tests. Zero values use the real thing.
type Options struct {
	Gateway     llm.Gateway
	SheetLogger sheet.Logger
	Logger      logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	return NewContainerWithOptions(cfg, Options{})
}

func NewContainerWithOptions(cfg *config.Config, opts Options) *Container {
	c := &Container{}

	// 1. Core Facades
	sysLogger := opts.Logger
	if sysLogger == nil {
		sysLogger = logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	}
	c.Logger = sysLogger

	// 2. Background queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	gateway := opts.Gateway
	if gateway == nil {
		if cfg.Dify.APIKey == "" {
			sysLogger.Error("DIFY", "DIFY_API_KEY not set. Chat features will not work.", nil)
		}
		gateway = dify.NewClient(cfg.Dify.ChatURL, cfg.Dify.APIKey, cfg.Dify.Timeout)
	}

	sheetLogger := opts.SheetLogger
	if sheetLogger == nil {
		if cfg.Sheet.WebhookURL == "" {
			sysLogger.Warn("SHEET", "SHEET_WEBHOOK_URL not set, results will not reach the spreadsheet", nil)
		}
		sheetLogger = sheet.NewWebhookClient(cfg.Sheet.WebhookURL, cfg.Sheet.Timeout)
	}

	sessionRepo := c.newSessionRepository(cfg, sysLogger)

	// NATS (optional)
	var bus pkgEvents.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			bus = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}
	eventPublisher := careerEvents.NewBusPublisher(bus, sysLogger)

	// Flat-file collections
	jobStore := file.NewJSONStore(filepath.Join(cfg.Storage.DataDir, constant.VRJobsFile), constant.DefaultVRJobs)
	submissionStore := file.NewJSONStore[dto.Submission](filepath.Join(cfg.Storage.DataDir, constant.SubmissionsFile), nil)
	for _, ensure := range []func() error{jobStore.EnsureExists, submissionStore.EnsureExists} {
		if err := ensure(); err != nil {
			sysLogger.Error("CATALOG", "Failed to seed data file", map[string]interface{}{"error": err.Error()})
		}
	}

	sheetLog := opts.Logger
	if sheetLog == nil {
		sheetLog = logger.NewIsolatedLogger(cfg.App.SheetLogFilePath)
	}

	// 4. Services
	sheetPublisher := service.NewPublisherService(constant.SheetLogTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		constant.SheetLogTopic,
		sheetLogger,
		cfg.Sheet.Timeout,
		sheetLog,
	)

	careerService := service.NewCareerService(sessionRepo, gateway, sheetPublisher, eventPublisher, sysLogger)
	catalogService := service.NewCatalogService(jobStore, submissionStore, constant.DefaultVRJobs, sysLogger)

	// 5. Controllers
	c.CareerController = controller.NewCareerController(careerService)
	c.CatalogController = controller.NewCatalogController(catalogService)

	return c
}

func (c *Container) newSessionRepository(cfg *config.Config, sysLogger logger.ILogger) contract.SessionRepository {
	if cfg.Storage.SessionStore != "redis" {
		return memory.NewSessionRepository()
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		sysLogger.Error("SESSION", "Failed to connect to Redis, falling back to in-memory sessions", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return memory.NewSessionRepository()
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return redisstore.NewSessionRepository(rdb)
}

// Close releases connections opened by the container.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
