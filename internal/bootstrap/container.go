package bootstrap

import (
	"context"
	"fmt"

	"learning-buddy-be/internal/config"
	"learning-buddy-be/internal/controller"
	"learning-buddy-be/internal/pkg/logger"
	"learning-buddy-be/internal/pkg/serverutils"
	"learning-buddy-be/internal/repository/unitofwork"
	"learning-buddy-be/internal/service"
	"learning-buddy-be/pkg/catalogapi"
	"learning-buddy-be/pkg/events"
	pktNats "learning-buddy-be/pkg/nats"
	"learning-buddy-be/pkg/recommender"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	Logger         logger.ILogger
	AuthMiddleware fiber.Handler

	// Controllers
	AuthController           controller.IAuthController
	UserController           controller.IUserController
	ProgressController       controller.IProgressController
	CatalogController        controller.ICatalogController
	QuestionController       controller.IQuestionController
	RecommendationController controller.IRecommendationController
	ChatController           controller.IChatController
	HealthController         controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

// NewContainer wires every dependency. It fails only when the recommender
// cannot load its keyword index.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)

	// 3. Infrastructure
	var eventPublisher events.Publisher
	var closers []func()
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS publisher", map[string]interface{}{"error": err.Error()})
		} else {
			eventPublisher = natsPub
			closers = append(closers, natsPub.Close)
		}
	}

	catalogClient := catalogapi.NewClient(catalogapi.Config{
		BaseURL:  cfg.CatalogAPI.BaseURL,
		Key:      cfg.CatalogAPI.Key,
		Timeout:  cfg.CatalogAPI.Timeout(),
		CacheTTL: cfg.CatalogAPI.CacheDuration(),
	}, sysLogger)
	if !catalogClient.IsConfigured() {
		sysLogger.Info("BOOTSTRAP", "Remote catalog not configured, serving catalog from database", nil)
	}

	engine, err := recommender.NewEngine(ctx, recommender.NewStoreCatalog(uowFactory), sysLogger)
	if err != nil {
		pubSub.Close()
		for _, c := range closers {
			c()
		}
		return nil, fmt.Errorf("init recommender: %w", err)
	}

	// 4. Services
	eventService := service.NewEventService(eventPublisher, sysLogger)
	publisherService := service.NewPublisherService(cfg.App.ProgressTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ProgressTopic, uowFactory, eventService, sysLogger)

	authService := service.NewAuthService(uowFactory, eventService, cfg.Auth.JwtSecret, cfg.Auth.TokenTTL())
	userService := service.NewUserService(uowFactory, eventService)
	progressService := service.NewProgressService(uowFactory, publisherService, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, catalogClient, sysLogger)
	questionService := service.NewQuestionService(uowFactory)
	recommendationService := service.NewRecommendationService(uowFactory, engine)
	chatService := service.NewChatService(uowFactory, engine)

	closers = append(closers, func() { _ = pubSub.Close() })

	// 5. Controllers
	return &Container{
		Logger:         sysLogger,
		AuthMiddleware: serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret),

		AuthController:           controller.NewAuthController(authService),
		UserController:           controller.NewUserController(userService),
		ProgressController:       controller.NewProgressController(progressService),
		CatalogController:        controller.NewCatalogController(catalogService),
		QuestionController:       controller.NewQuestionController(questionService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		ChatController:           controller.NewChatController(chatService),
		HealthController:         controller.NewHealthController(),

		ConsumerService: consumerService,

		closers: closers,
	}, nil
}

// Close releases the event bus and broker connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
