// Package handlers exposes the todo CRUD surface over HTTP.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"go-todo-app/backend/internal/repositories"
	"go-todo-app/backend/internal/services"
)

// createTodoRequest is the POST /todos body. Title is validated by the
// service so a blank or whitespace-only value yields the exact
// "Title is required" message rather than a generic binding error.
type createTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// updateTodoRequest is the PUT /todos/:id body. Completed is a pointer so a
// missing field is distinguishable from an explicit false.
type updateTodoRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// TodoHandler holds the handlers for the todo endpoints.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// GetTodosHandler returns every todo, newest first.
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	todos, err := h.todoService.ListTodos(c.Request.Context())
	if err != nil {
		log.Error("failed to fetch todos", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// CreateTodoHandler creates a new todo.
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	createdTodo, err := h.todoService.CreateTodo(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		log.Error("failed to create todo", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save todo"})
		return
	}
	c.JSON(http.StatusCreated, createdTodo)
}

// UpdateTodoHandler toggles the completed flag of an existing todo.
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	updatedTodo, err := h.todoService.SetCompleted(c.Request.Context(), id, *req.Completed)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		log.Error("failed to update todo", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// DeleteTodoHandler removes a todo.
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		log.Error("failed to delete todo", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}
	c.Status(http.StatusNoContent)
}
