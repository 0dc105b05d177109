package main

import (
	"coachdesk/internal/api"
	"coachdesk/internal/config"
	"coachdesk/internal/repository"
	"coachdesk/internal/repository/memory"
	mongorepo "coachdesk/internal/repository/mongo"
	"coachdesk/internal/seed"
	"coachdesk/internal/service"
	"coachdesk/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Starting CoachDesk server...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}

	// --- Repositories ---
	var (
		clientRepo  repository.ClientRepository
		dietRepo    repository.DietPlanRepository
		workoutRepo repository.WorkoutPlanRepository
		checkInRepo repository.CheckInRepository
	)

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			logrus.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				logrus.Errorf("failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		logrus.WithField("database", cfg.Database.Name).Info("Database connection established")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsureClientIndexes(ctx, appDB.Collection("clients"))
			mongorepo.EnsureCheckInIndexes(ctx, appDB.Collection("check_ins"))
		}()

		clientRepo = mongorepo.NewMongoClientRepository(appDB)
		dietRepo = mongorepo.NewMongoDietPlanRepository(appDB)
		workoutRepo = mongorepo.NewMongoWorkoutPlanRepository(appDB)
		checkInRepo = mongorepo.NewMongoCheckInRepository(appDB)
	case config.DriverMemory:
		clientRepo = memory.NewMemoryClientRepository()
		dietRepo = memory.NewMemoryDietPlanRepository()
		workoutRepo = memory.NewMemoryWorkoutPlanRepository()
		checkInRepo = memory.NewMemoryCheckInRepository()

		if cfg.Storage.Seed {
			if err := seedStore(clientRepo, dietRepo, workoutRepo, checkInRepo); err != nil {
				logrus.Fatalf("failed to seed demo data: %v", err)
			}
			logrus.Info("Demo dataset loaded")
		}
	default:
		logrus.Fatalf("unknown storage driver %q (want %q or %q)", cfg.Storage.Driver, config.DriverMemory, config.DriverMongo)
	}

	// --- Optional photo storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			logrus.Fatalf("failed to initialize S3 storage: %v", err)
		}
		logrus.WithField("bucket", cfg.S3.BucketName).Info("Photo storage enabled")
	} else {
		logrus.Info("Photo storage not configured; photo endpoints disabled")
	}

	// --- Services ---
	clientService := service.NewClientService(clientRepo)
	planService := service.NewPlanService(dietRepo, workoutRepo)
	checkInService := service.NewCheckInService(checkInRepo, clientRepo)
	dashboardService := service.NewDashboardService(clientRepo)

	// --- Router ---
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger())
	api.SetupRoutes(router, clientService, planService, checkInService, dashboardService, fileStorage)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.WithField("address", cfg.Server.Address).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}
	logrus.Info("Server exiting")
}

// seedStore loads the demo dataset into freshly created repositories.
func seedStore(
	clientRepo repository.ClientRepository,
	dietRepo repository.DietPlanRepository,
	workoutRepo repository.WorkoutPlanRepository,
	checkInRepo repository.CheckInRepository,
) error {
	ctx := context.Background()

	for _, c := range seed.Clients() {
		if _, err := clientRepo.Create(ctx, &c); err != nil {
			return err
		}
	}
	for _, p := range seed.DietPlans() {
		if _, err := dietRepo.Create(ctx, &p); err != nil {
			return err
		}
	}
	for _, p := range seed.WorkoutPlans() {
		if _, err := workoutRepo.Create(ctx, &p); err != nil {
			return err
		}
	}
	for _, ci := range seed.CheckIns() {
		if _, err := checkInRepo.Create(ctx, &ci); err != nil {
			return err
		}
	}
	return nil
}
