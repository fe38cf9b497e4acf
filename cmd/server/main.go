package main

import (
	"context"
	"fmt"
	"log"

	httpadapter "career-path-finder/internal/adapter/http"
	repo "career-path-finder/internal/adapter/repository"
	"career-path-finder/internal/config"
	"career-path-finder/internal/infrastructure/migration"
	"career-path-finder/internal/storage"
	"career-path-finder/internal/usecase"
	"career-path-finder/pkg/ai"
	infra "career-path-finder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := storage.NewManager(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	// history is optional: without a DSN the service runs stateless
	plansPool, err := infra.NewPlansPool(ctx, cfg.Database.URL)
	if err != nil {
		log.Printf("warning: plans DB not available: %v", err)
	}
	if plansPool != nil {
		if err := migration.RunMigrations(ctx, plansPool); err != nil {
			log.Printf("warning: migrations failed: %v", err)
		}
	}

	renderer := infra.NewChromedpRenderer()
	plansRepo := repo.NewPlansRepo(plansPool)
	aiClient := ai.NewClient(cfg.OpenAI)
	processor := usecase.NewProcessor(aiClient, renderer, store, plansRepo)

	app := fiber.New(fiber.Config{
		BodyLimit: 12 * 1024 * 1024, // forms with a resume attachment
	})
	app.Static("/static", cfg.Server.StaticDir)

	h := httpadapter.NewHandler(processor, store, cfg.Server.StaticDir)
	h.Register(app)

	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
