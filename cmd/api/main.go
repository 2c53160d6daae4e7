package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/router"
	"github.com/TheKalyaniMohite/TableGrapeAgent/internal/logger"
	"github.com/TheKalyaniMohite/TableGrapeAgent/config"
	"github.com/TheKalyaniMohite/TableGrapeAgent/db"
	_ "github.com/TheKalyaniMohite/TableGrapeAgent/docs"
)

// @title           TableGrape Agent API
// @version         1.0
// @description     Farm advisory API: chat assistant, farms and weather
// @BasePath        /api
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	r := router.New()

	// The web frontend runs on a different origin during development.
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	addr := config.GetConfig().ServerAddr
	if addr == "" {
		addr = ":8000"
	}

	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
