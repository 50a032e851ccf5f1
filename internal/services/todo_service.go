// Package services holds the business rules between the HTTP handlers and
// the repository.
package services

import (
	"context"
	"errors"
	"strings"

	"go-todo-app/backend/internal/models"
	"go-todo-app/backend/internal/repositories"
)

// ErrTitleRequired is returned when a todo is created with a blank title.
var ErrTitleRequired = errors.New("title is required")

// TodoStore is the repository surface the service needs.
type TodoStore interface {
	FindAll(ctx context.Context) ([]*models.Todo, error)
	Create(ctx context.Context, title string, description *string) (*models.Todo, error)
	SetCompleted(ctx context.Context, id int, completed bool) (*models.Todo, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// TodoService validates input and maps store results to domain errors.
type TodoService struct {
	todoRepo TodoStore
}

// NewTodoService creates a new TodoService.
func NewTodoService(todoRepo TodoStore) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// ListTodos returns all todos, newest first.
func (s *TodoService) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	return s.todoRepo.FindAll(ctx)
}

// CreateTodo validates and stores a new todo. The title is trimmed before
// validation, so a whitespace-only title is rejected with ErrTitleRequired.
func (s *TodoService) CreateTodo(ctx context.Context, title string, description *string) (*models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	return s.todoRepo.Create(ctx, title, description)
}

// SetCompleted toggles the completion flag of an existing todo.
func (s *TodoService) SetCompleted(ctx context.Context, id int, completed bool) (*models.Todo, error) {
	return s.todoRepo.SetCompleted(ctx, id, completed)
}

// DeleteTodo removes a todo, reporting ErrTodoNotFound when the id does not
// exist.
func (s *TodoService) DeleteTodo(ctx context.Context, id int) error {
	removed, err := s.todoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return repositories.ErrTodoNotFound
	}
	return nil
}
