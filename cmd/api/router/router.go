package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"maternal-chat/cmd/api/handlers"
	"maternal-chat/cmd/api/middleware"
	"maternal-chat/cmd/api/services"
	"maternal-chat/config"
	_ "maternal-chat/docs"
)

func New(cfg config.AppConfig, chatSvc *services.ChatService) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/chat/new", handlers.NewChatHandler(chatSvc))
	r.POST("/chat/:chat_id/send",
		middleware.RateLimit(cfg.RateLimit.RequestsPerMinute),
		handlers.SendMessageHandler(chatSvc))
	r.GET("/chat/:chat_id", handlers.GetChatHandler(chatSvc))
	r.GET("/chats", handlers.ListChatsHandler(chatSvc))
	r.PUT("/chat/:chat_id/title", handlers.UpdateTitleHandler(chatSvc))
	r.DELETE("/chat/:chat_id", handlers.DeleteChatHandler(chatSvc))

	return r
}
