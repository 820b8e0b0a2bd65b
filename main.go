package main

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"cityhunt/internal/api"
	"cityhunt/internal/blob"
	"cityhunt/internal/catalog"
	"cityhunt/internal/models"
	"cityhunt/internal/repository"
	"cityhunt/internal/service"
	"cityhunt/internal/storage"
	"cityhunt/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := storage.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.Team{},
		&models.Mission{},
		&models.Submission{},
		&models.Message{},
		&models.Broadcast{},
		&models.BroadcastReceipt{},
		&models.GameState{},
	); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	repos := repository.NewRepositories(db)

	// Load the mission catalog on first startup only.
	if err := catalog.Seed(repos.Mission); err != nil {
		log.Fatalf("Failed to seed mission catalog: %v", err)
	}

	blobs, err := blob.NewStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to prepare upload dir: %v", err)
	}

	services, err := service.NewServices(repos, blobs, service.Options{
		GMPassword:          cfg.GM.Password,
		TokenSecret:         cfg.GM.TokenSecret,
		TokenTTL:            time.Duration(cfg.GM.TokenTTLHours) * time.Hour,
		DefaultRoundMinutes: cfg.Round.DefaultMinutes,
	})
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	r := gin.Default()
	api.SetupRoutes(r, services, cfg.Upload.Dir)

	log.Infof("city game server listening on %s", cfg.Server.Address)
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
