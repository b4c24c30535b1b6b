package main

import (
	"context"
	"fmt"
	"log"

	"github.com/luisgarciam27/demo-churre/configs"
	"github.com/luisgarciam27/demo-churre/middlewares"
	"github.com/luisgarciam27/demo-churre/routes"
	"github.com/luisgarciam27/demo-churre/ws"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedAppConfig(cfg); err != nil {
		log.Fatalf("seed app config failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Churre IA: sin API key el recomendador queda en modo solo-diccionario
	var model llms.Model
	if cfg.GeminiAPIKey != "" {
		m, err := googleai.New(context.Background(),
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel("gemini-1.5-flash"),
		)
		if err != nil {
			log.Printf("⚠️ gemini init failed, quick responses only: %v", err)
		} else {
			model = m
		}
	} else {
		log.Println("⚠️ no GEMINI_API_KEY, quick responses only")
	}

	// Hub de pedidos para las terminales POS
	hub := ws.NewOrderHub()
	go hub.Run()

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, cfg, model, hub)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
