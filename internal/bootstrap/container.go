package bootstrap

import (
	"log"
	"time"

	"academy-chatbot-be/internal/config"
	"academy-chatbot-be/internal/controller"
	"academy-chatbot-be/internal/pkg/logger"
	"academy-chatbot-be/internal/pkg/mailer"
	"academy-chatbot-be/internal/repository/contract"
	"academy-chatbot-be/internal/repository/implementation"
	"academy-chatbot-be/internal/repository/memory"
	"academy-chatbot-be/internal/repository/redisstore"
	"academy-chatbot-be/internal/service"
	"academy-chatbot-be/pkg/ai/openai"
	"academy-chatbot-be/pkg/catalog"

	pktNats "academy-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background services (exposed for main.go to run)
	NotifierService service.INotifierService
	SessionService  service.ISessionService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI provider
	aiProvider := openai.NewOpenAIProvider(
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
		cfg.Ai.Model,
		cfg.Ai.MaxRetries,
		time.Duration(cfg.Ai.RetryDelayMs)*time.Millisecond,
	)
	log.Printf("[INFO] Using AI model: %s", cfg.Ai.Model)

	// NATS is optional: lead notifications still reach staff by email when
	// the bus is down.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 4. Session storage
	sessionTimeout := time.Duration(cfg.Chatbot.SessionTimeoutMinutes) * time.Minute
	var sessionStore contract.SessionStore
	switch cfg.App.SessionBackend {
	case "memory":
		sessionStore = memory.NewSessionStore(sessionTimeout)
		log.Printf("[INFO] Using session backend: MEMORY")
	case "redis":
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, falling back to memory sessions: %v", err)
			sessionStore = memory.NewSessionStore(sessionTimeout)
		} else {
			sessionStore = redisstore.NewSessionStore(redis.NewClient(opts), sessionTimeout)
			log.Printf("[INFO] Using session backend: REDIS")
		}
	default:
		sessionStore = implementation.NewChatSessionStore(db, sessionTimeout)
		log.Printf("[INFO] Using session backend: POSTGRES")
	}

	// 5. Repositories
	faqRepo := implementation.NewFaqRepository(db)
	textRepo := implementation.NewCourseTextRepository(db)
	trainingRepo := implementation.NewTrainingRepository(db)
	trainerRepo := implementation.NewTrainerRepository(db)
	graduateRepo := implementation.NewGraduateRepository(db)
	leadRepo := implementation.NewLeadRepository(db)

	trainingCatalog := catalog.New(trainingRepo, textRepo)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.App.LeadTopic, pubSub)
	sessionService := service.NewSessionService(
		sessionStore, sysLogger,
		cfg.Chatbot.MaxMessagesPerWindow, cfg.Chatbot.RateWindowMinutes,
	)
	nlpService := service.NewNlpService(aiProvider, sysLogger, cfg)
	intentService := service.NewIntentService(nlpService, sysLogger)
	searchService := service.NewSearchService(faqRepo, textRepo, trainingRepo, trainingCatalog, sysLogger)
	recommendationService := service.NewRecommendationService(trainingRepo, trainingCatalog, sysLogger)
	trainerService := service.NewTrainerService(trainerRepo, sysLogger)
	graduateService := service.NewGraduateService(graduateRepo, sysLogger)
	leadService := service.NewLeadService(leadRepo, publisherService, sysLogger)

	chatService := service.NewChatService(
		sessionService,
		intentService,
		nlpService,
		searchService,
		recommendationService,
		trainerService,
		graduateService,
		leadService,
		trainingCatalog,
		sysLogger,
	)

	notifierService := service.NewNotifierService(
		pubSub, cfg.App.LeadTopic, emailService, natsPub, cfg.App.StaffEmail, sysLogger,
	)

	// 7. Controllers
	chatController := controller.NewChatController(chatService)

	return &Container{
		ChatController:  chatController,
		NotifierService: notifierService,
		SessionService:  sessionService,
	}
}
