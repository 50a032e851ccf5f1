package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo-app/backend/internal/models"
	"go-todo-app/backend/internal/repositories"
	"go-todo-app/backend/internal/services"
)

// stubStore records the arguments the service forwards to the repository.
type stubStore struct {
	createdTitle string
	createdDesc  *string
	deleteResult bool
	deleteErr    error
}

func (s *stubStore) FindAll(_ context.Context) ([]*models.Todo, error) {
	return []*models.Todo{}, nil
}

func (s *stubStore) Create(_ context.Context, title string, description *string) (*models.Todo, error) {
	s.createdTitle = title
	s.createdDesc = description
	return &models.Todo{ID: 1, Title: title, Description: description}, nil
}

func (s *stubStore) SetCompleted(_ context.Context, id int, completed bool) (*models.Todo, error) {
	if id == 999 {
		return nil, repositories.ErrTodoNotFound
	}
	return &models.Todo{ID: id, Title: "Buy milk", Completed: completed}, nil
}

func (s *stubStore) Delete(_ context.Context, _ int) (bool, error) {
	return s.deleteResult, s.deleteErr
}

func TestCreateTodo_TrimsTitle(t *testing.T) {
	store := &stubStore{}
	svc := services.NewTodoService(store)

	created, err := svc.CreateTodo(context.Background(), "  Buy milk  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, "Buy milk", store.createdTitle, "the trimmed title should reach the store")
}

func TestCreateTodo_RejectsBlankTitle(t *testing.T) {
	store := &stubStore{}
	svc := services.NewTodoService(store)

	for _, title := range []string{"", "   ", "\t\n"} {
		created, err := svc.CreateTodo(context.Background(), title, nil)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, services.ErrTitleRequired)
	}
	assert.Empty(t, store.createdTitle, "a blank title should never reach the store")
}

func TestSetCompleted_PassesThroughNotFound(t *testing.T) {
	svc := services.NewTodoService(&stubStore{})

	updated, err := svc.SetCompleted(context.Background(), 999, true)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, repositories.ErrTodoNotFound)
}

func TestDeleteTodo(t *testing.T) {
	t.Run("succeeds when a row was removed", func(t *testing.T) {
		svc := services.NewTodoService(&stubStore{deleteResult: true})
		assert.NoError(t, svc.DeleteTodo(context.Background(), 1))
	})

	t.Run("maps a missing row to not found", func(t *testing.T) {
		svc := services.NewTodoService(&stubStore{deleteResult: false})
		err := svc.DeleteTodo(context.Background(), 999)
		assert.ErrorIs(t, err, repositories.ErrTodoNotFound)
	})

	t.Run("passes through store failures", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		svc := services.NewTodoService(&stubStore{deleteErr: storeErr})
		err := svc.DeleteTodo(context.Background(), 1)
		assert.ErrorIs(t, err, storeErr)
	})
}
