package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"buildings-api/internal/config"
	"buildings-api/internal/handler"
	"buildings-api/internal/repository"
	"buildings-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Buildings API
//	@version		1.0
//	@description	Searchable, paginated building list and map markers over the DataHub and Helsinki service map feeds.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config.LogLevel, config.LogFormat)
	gin.SetMode(config.GinMode)

	httpClient := &http.Client{Timeout: config.FetchTimeout}

	// Initialize layers
	dataHubRepo := repository.NewDataHubRepository(httpClient, config.DataHubURL)
	serviceMapRepo := repository.NewServiceMapRepository(httpClient, config.ServiceMapURL)

	buildingService := service.NewBuildingService(dataHubRepo, serviceMapRepo)

	markerHandler := handler.NewMarkerHandler(buildingService)
	buildingHandler := handler.NewBuildingHandler(buildingService)
	unitHandler := handler.NewUnitHandler(buildingService)

	// Both sources load in the background; the API serves empty lists until they arrive.
	go buildingService.Refresh(context.Background())

	r := handler.NewRouter(markerHandler, buildingHandler, unitHandler)

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
