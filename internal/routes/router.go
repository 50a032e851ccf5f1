// Package routes assembles the gin router.
package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-todo-app/backend/internal/database"
	"go-todo-app/backend/internal/handlers"
	"go-todo-app/backend/internal/repositories"
	"go-todo-app/backend/internal/services"
)

// SetupRouter wires repositories, services and handlers onto a gin engine
// and registers every endpoint.
func SetupRouter(db database.DBInterface) *gin.Engine {
	// Request bodies with fields no endpoint declares are rejected instead
	// of silently ignored.
	gin.EnableJsonDecoderDisallowUnknownFields()

	r := gin.Default()

	// CORS for the browser front end.
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	todoRepo := repositories.NewTodoRepository(db)
	todoService := services.NewTodoService(todoRepo)
	todoHandler := handlers.NewTodoHandler(todoService)

	r.GET("/healthz", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/todos", todoHandler.GetTodosHandler)
	r.POST("/todos", todoHandler.CreateTodoHandler)
	r.PUT("/todos/:id", todoHandler.UpdateTodoHandler)
	r.DELETE("/todos/:id", todoHandler.DeleteTodoHandler)

	return r
}
