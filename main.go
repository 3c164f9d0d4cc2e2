package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/issa01818/ClickShop1/config"
	"github.com/issa01818/ClickShop1/routes"
	"github.com/issa01818/ClickShop1/store"
)

func main() {
	log.Println("✅ Starting ClickShop...")

	cfg := config.MustLoad()

	// Init DB
	db := initDatabase(cfg)
	st := store.New(db)

	// Schema + seed catalog, explicitly at startup
	if err := st.AutoMigrate(); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	if err := st.SeedProductsIfEmpty(store.DefaultProducts()); err != nil {
		log.Fatalf("❌ Product seeding failed: %v", err)
	}

	// Gin setup
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Server-side session store; the cookie carries only the signed session id
	sessionStore := memstore.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("clickshop_session", sessionStore))

	// Setup routes
	routes.SetupRoutes(r, st)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection: PostgreSQL when DATABASE_URL
// is set, otherwise the SQLite file from the config.
func initDatabase(cfg *config.Config) *gorm.DB {
	gormCfg := &gorm.Config{TranslateError: true}

	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
