package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/pkg/auth"
)

type HandlersConfig struct {
	TodoHandler *handler.TodoHandler
}

// SetupRouter wires middleware and the todo routes. Cross-origin access is
// allowed unconditionally.
func SetupRouter(handlers HandlersConfig, logger zerolog.Logger, jwtSecret string) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.Default())

	protected := router.Group("/todos")
	protected.Use(auth.GinJwtMiddleware(jwtSecret))
	{
		protected.GET("", handlers.TodoHandler.GetTodos)
		protected.POST("", handlers.TodoHandler.CreateTodo)
		protected.PUT("/:todoId", handlers.TodoHandler.UpdateTodo)
		protected.DELETE("/:todoId", handlers.TodoHandler.DeleteTodo)
		protected.POST("/:todoId/attachment", handlers.TodoHandler.GenerateUploadURL)
	}

	return router
}
