package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/alma-platform/alma-operations-service/internal/config"
	httpdelivery "github.com/alma-platform/alma-operations-service/internal/delivery/http"
	"github.com/alma-platform/alma-operations-service/internal/delivery/http/handlers"
	"github.com/alma-platform/alma-operations-service/internal/domain"
	publisher "github.com/alma-platform/alma-operations-service/internal/infrastructure/kafka"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/memory"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/metrics"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/migrate"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/repository"
	rediscache "github.com/alma-platform/alma-operations-service/internal/infrastructure/redis"
	"github.com/alma-platform/alma-operations-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	// Init storage. No DSN means the in-memory store with sample data:
	// the core must run even with nothing configured.
	var (
		operationRepo domain.OperationRepository
		clientRepo    domain.ClientRepository
		userRepo      domain.UserRepository
	)
	if cfg.OperationsDB.Dsn != "" {
		db := postgres.MustInitDB(cfg)
		if cfg.OperationsDB.MigrationsPath != "" {
			if err := migrate.RunMigrations(db, cfg.OperationsDB.MigrationsPath); err != nil {
				log.Fatalf("failed to run migrations: %v", err)
			}
		}
		operationRepo = repository.NewDefaultOperationRepository(db)
		clientRepo = repository.NewDefaultClientRepository(db)
		userRepo = repository.NewDefaultUserRepository(db)
	} else {
		slog.Warn("no database configured, using in-memory store with sample data")
		memClients := memory.NewMemoryClientRepository()
		memUsers := memory.NewMemoryUserRepository()
		if err := memory.SeedSampleData(memUsers, memClients); err != nil {
			log.Fatalf("failed to seed sample data: %v", err)
		}
		operationRepo = memory.NewMemoryOperationRepository(memClients)
		clientRepo = memClients
		userRepo = memUsers
	}

	// Listing cache is optional
	var cache domain.ListingCache
	if cfg.Redis.Addr != "" {
		cache = rediscache.NewListingCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	// Kafka publisher is optional
	var pub domain.PublisherPort
	if len(cfg.KafkaService.Brokers) > 0 {
		pub = publisher.NewDefaultKafkaPublisher(cfg.KafkaService.Brokers)
	}

	operationMetrics := metrics.NewOperationMetrics()

	// Init usecases
	operationUsecase := usecase.NewDefaultOperationUsecase(
		operationRepo,
		clientRepo,
		cache,
		pub,
		cfg.KafkaService.EventTopic,
		operationMetrics,
	)
	clientUsecase := usecase.NewDefaultClientUsecase(clientRepo)
	userUsecase := usecase.NewDefaultUserUsecase(userRepo)

	// HTTP delivery
	router := httpdelivery.NewRouter(
		handlers.NewAuthHandler(userUsecase),
		handlers.NewUserHandler(userUsecase),
		handlers.NewClientHandler(clientUsecase),
		handlers.NewOperationHandler(operationUsecase),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
