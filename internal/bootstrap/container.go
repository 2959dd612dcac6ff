package bootstrap

import (
	"learnz-tutor-be/internal/config"
	"learnz-tutor-be/internal/controller"
	"learnz-tutor-be/internal/pkg/logger"
	"learnz-tutor-be/internal/repository/unitofwork"
	"learnz-tutor-be/internal/service"
	"learnz-tutor-be/pkg/genai"
	"learnz-tutor-be/pkg/speech"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TutorController controller.ITutorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Outbound Clients
	geminiClient := genai.NewClient(cfg.Tutor.GeminiBaseURL, cfg.Tutor.GeminiModel)
	speechClient := speech.NewClient(
		cfg.Tutor.ElevenLabsBaseURL,
		cfg.Keys.ElevenLabs,
		cfg.Tutor.ElevenLabsVoiceId,
		speech.VoiceSettings{
			Stability:       cfg.Tutor.VoiceStability,
			SimilarityBoost: cfg.Tutor.SimilarityBoost,
		},
	)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Tutor.TurnTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Tutor.TurnTopic,
		uowFactory,
		sysLogger,
	)

	tutorService := service.NewTutorService(
		uowFactory,
		geminiClient,
		speechClient,
		publisherService,
		cfg.Keys,
		cfg.Tutor.HistoryLimit,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		TutorController: controller.NewTutorController(tutorService),
		ConsumerService: consumerService,
	}
}
