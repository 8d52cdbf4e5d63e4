package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-share/config"
	"recipe-share/handlers"
	"recipe-share/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize database (migrate + seed on first run)
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(handlers.Recovery), cors.Default())
	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/static", cfg.StaticDir)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Recipe Sharing Web App",
		})
	})

	routes.SetupRoutes(r, handlers.NewRecipeHandler(db, cfg), handlers.NewReviewHandler(db, cfg))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Server running on http://%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server gracefully ...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server shutdown:", err)
	}
	log.Println("Server exiting")
}
