package bootstrap

import (
	"context"
	"log"

	"virtual-classroom-be/internal/config"
	"virtual-classroom-be/internal/controller"
	"virtual-classroom-be/internal/pkg/logger"
	"virtual-classroom-be/internal/pkg/mailer"
	"virtual-classroom-be/internal/realtime"
	"virtual-classroom-be/internal/repository/unitofwork"
	"virtual-classroom-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	SessionController      controller.ISessionController
	AssignmentController   controller.IAssignmentController
	QuizController         controller.IQuizController
	NotificationController controller.INotificationController
	AnalyticsController    controller.IAnalyticsController
	DashboardController    controller.IDashboardController
	RealtimeController     controller.IRealtimeController

	// Shared infrastructure
	Hub    *realtime.Hub
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(pubSub)

	// 3. Realtime Hub and Relay
	wsLogger := logger.NewIsolatedLogger(cfg.App.RealtimeLogPath)
	hub := realtime.NewHub(wsLogger)
	store := realtime.NewStore(uowFactory)
	relay := realtime.NewRelay(hub, store, wsLogger)
	go hub.Run()

	// 4. Services
	authService := service.NewAuthService(uowFactory, cfg.JWT.ExpiryHours)
	sessionService := service.NewSessionService(uowFactory, publisherService, cfg.App.ChatHistoryLimit, sysLogger)
	assignmentService := service.NewAssignmentService(uowFactory, publisherService, sysLogger)
	quizService := service.NewQuizService(uowFactory)
	analyticsService := service.NewAnalyticsService(uowFactory)
	dashboardService := service.NewDashboardService(uowFactory)

	notificationService := service.NewNotificationService(uowFactory, pubSub, hub, emailService, sysLogger)
	if err := notificationService.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start notification service: %v", err)
	}

	// 5. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		SessionController:      controller.NewSessionController(sessionService),
		AssignmentController:   controller.NewAssignmentController(assignmentService),
		QuizController:         controller.NewQuizController(quizService),
		NotificationController: controller.NewNotificationController(notificationService),
		AnalyticsController:    controller.NewAnalyticsController(analyticsService),
		DashboardController:    controller.NewDashboardController(dashboardService),
		RealtimeController:     controller.NewRealtimeController(hub, relay, wsLogger),
		Hub:                    hub,
		Logger:                 sysLogger,
	}
}
