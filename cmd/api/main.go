package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enquesta/enquesta-api/internal/infrastructure/database"
	"github.com/enquesta/enquesta-api/internal/interfaces/http/middleware"
	"github.com/enquesta/enquesta-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		// Increase concurrency for better performance
		Concurrency: 256 * 1024,
		// Prefork desabilitado pois causa instabilidade no container
		Prefork: false,
		// Set reasonable body limit
		BodyLimit: 10 * 1024 * 1024, // 10MB
		// Configure server for better performance
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes (retorna o dispatcher de fanout para o shutdown)
	dispatcher := routes.SetupRoutes(app, db)

	// Encerramento gracioso: fecha o servidor e drena o fanout
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("🛑 Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Error shutting down server: %v", err)
		}
	}()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}

	// Drena as entregas pendentes antes de sair
	dispatcher.Close()
	log.Println("✅ Fanout drained, bye")
}
