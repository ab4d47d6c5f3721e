package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tehimas/warung-seblak/auth"
	"github.com/tehimas/warung-seblak/composer"
	"github.com/tehimas/warung-seblak/config"
	"github.com/tehimas/warung-seblak/middlewares"
	"github.com/tehimas/warung-seblak/models"
	"github.com/tehimas/warung-seblak/router"
	"github.com/tehimas/warung-seblak/seed"
	"github.com/tehimas/warung-seblak/services/whatsapp"
	"github.com/tehimas/warung-seblak/utils"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seed.Run(db)

	// Guard admin: kredensial statis + session store
	verifier, err := auth.NewStaticVerifier(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminFullName)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to init credentials verifier: %v", err)
	}
	store := buildSessionStore(cfg)

	// Hand-off WhatsApp; relay opsional
	var relay *whatsapp.RelayClient
	if cfg.FonnteToken != "" {
		relay = whatsapp.NewRelayClient(cfg.FonnteToken)
		utils.InfoLogger.Println("WhatsApp relay enabled")
	}
	wa := whatsapp.NewService(cfg.WarungPhone, relay)

	registry := composer.NewRegistry()

	rateLimiter := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateLimitInterval)

	r := router.SetupRouter(db, registry, wa, verifier, store, rateLimiter)

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("Listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func buildSessionStore(cfg *config.Config) auth.SessionStore {
	if cfg.RedisURL != "" {
		store, err := auth.NewRedisSessionStore(cfg.RedisURL, 24*time.Hour)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to connect to redis: %v", err)
		}
		utils.InfoLogger.Println("Using redis session store")
		return store
	}
	return auth.NewFileSessionStore(cfg.SessionFile)
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.MenuItem{},
		&models.SeblakVariation{},
		&models.Topping{},
		&models.StockItem{},
		&models.Promo{},
		&models.Testimonial{},
		&models.WarungSetting{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderTopping{},
		&models.OrderCustomization{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
