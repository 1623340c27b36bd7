package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"roster-game-system/config"
	"roster-game-system/handlers"
	"roster-game-system/models"
	"roster-game-system/services"
	"roster-game-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration:", err)
	}
	rules := config.DefaultRules()

	app := fiber.New()

	origins := strings.Split(cfg.AllowedOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
	}))

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.CharacterTemplate{},
		&models.OwnedCopy{},
		&models.Team{},
		&models.TeamMember{},
		&models.AccountMilestone{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	rng := services.DefaultRNG()

	accountService := services.NewAccountService(db, rules, cfg.JWTSecret)
	characterService := services.NewCharacterService(db)
	drawService := services.NewDrawService(db, rules, rng)
	reinforceService := services.NewReinforceService(db, rules, rng)
	matchService := services.NewMatchService(db, rules, rng)
	teamService := services.NewTeamService(db, rules)
	milestoneService := services.NewMilestoneService(db, rules)

	handlers.SetupAccountRoutes(app, accountService, cfg.JWTSecret)
	handlers.SetupCharacterRoutes(app, characterService)
	handlers.SetupDrawRoutes(app, drawService, cfg.JWTSecret)
	handlers.SetupReinforceRoutes(app, reinforceService, cfg.JWTSecret)
	handlers.SetupMatchRoutes(app, matchService, cfg.JWTSecret)
	handlers.SetupTeamRoutes(app, teamService, cfg.JWTSecret)
	handlers.SetupMilestoneRoutes(app, milestoneService, cfg.JWTSecret)

	sweepEvery := time.Duration(cfg.MilestoneSweepMinutes) * time.Minute
	sched, err := workers.StartMilestoneWorker(milestoneService, sweepEvery)
	if err != nil {
		log.Fatal("failed to start milestone worker:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on %s", cfg.ListenAddr)
	log.Printf("✅ CORS configured for origins: %s", strings.Join(origins, ","))

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = sched.Shutdown()
	_ = app.Shutdown()
}
