package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/TheKalyaniMohite/TableGrapeAgent/advisor"
	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/handlers"
	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/middleware"
	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/services"
	"github.com/TheKalyaniMohite/TableGrapeAgent/db"
	_ "github.com/TheKalyaniMohite/TableGrapeAgent/docs"
	"github.com/TheKalyaniMohite/TableGrapeAgent/repositories"
	"github.com/TheKalyaniMohite/TableGrapeAgent/weather"
)

func New() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	database := db.Database()
	farms := repositories.NewFarmRepository(database)
	blocks := repositories.NewBlockRepository(database)
	sessions := repositories.NewChatSessionRepository(database)
	messages := repositories.NewChatMessageRepository(database)
	status := repositories.NewCropStatusRepository(database)
	scouting := repositories.NewScoutingLogRepository(database)
	irrigation := repositories.NewIrrigationLogRepository(database)
	brix := repositories.NewBrixSampleRepository(database)
	forecasts := weather.New()

	api := r.Group("/api")
	{
		chatSvc := services.NewChatService(
			farms, blocks, sessions, messages,
			status, scouting, irrigation, brix,
			forecasts, advisor.Reply,
		)
		api.POST("/chat/message", handlers.SendChatMessageHandler(chatSvc))
		api.GET("/chat/history", handlers.GetChatHistoryHandler(chatSvc))
		api.DELETE("/chat/history", handlers.ClearChatHistoryHandler(chatSvc))

		farmSvc := services.NewFarmService(farms)
		api.POST("/farms", handlers.CreateFarmHandler(farmSvc))
		api.GET("/farms/:id", handlers.GetFarmHandler(farmSvc))

		api.GET("/weather/forecast", handlers.GetForecastHandler(forecasts))
	}

	return r
}
