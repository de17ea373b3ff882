package wire

import (
	"SocialPulse/internal/api"
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/api/handler"
	"SocialPulse/internal/job"
	"SocialPulse/internal/pkg/apify"
	"SocialPulse/internal/pkg/cron"
	"SocialPulse/internal/pkg/kafka"
	"SocialPulse/internal/repository"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	Producer     *kafka.SyncProducer
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewSocialProfileRepo(db)
	postRepo := repository.NewSocialPostRepo(db)
	metricRepo := repository.NewDailyMetricRepo(db)
	engagementRepo := repository.NewDailyEngagementRepo(db)
	growthRepo := repository.NewDailyGrowthRepo(db)
	reachRepo := repository.NewDailyReachRepo(db)
	scoreRepo := repository.NewDailyScoreRepo(db)
	goalRepo := repository.NewGrowthGoalRepo(db)

	registry := service.DefaultPlatformRegistry()
	provider := apify.NewClient(cfg.Apify)

	syncService := service.NewSyncService(
		registry,
		provider,
		userRepo,
		profileRepo,
		postRepo,
		metricRepo,
		engagementRepo,
		growthRepo,
		reachRepo,
		scoreRepo,
		cfg.Sync.PostsLimit,
	)

	producer, err := kafka.NewSyncProducer(cfg)
	if err != nil {
		return nil, err
	}

	orchestratorService := service.NewOrchestratorService(registry, userRepo, producer)
	metricsQueryService := service.NewMetricsQueryService(profileRepo, metricRepo)
	growthGoalService := service.NewGrowthGoalService(registry, goalRepo)

	handlers := &api.HandlersGroup{
		SyncHandler:       handler.NewSyncHandler(orchestratorService),
		MetricsHandler:    handler.NewMetricsHandler(metricsQueryService),
		GrowthGoalHandler: handler.NewGrowthGoalHandler(growthGoalService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, syncService)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(job.NewSyncAllJob(orchestratorService))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		Producer:     producer,
		CronMgr:      cronMgr,
	}, nil
}
