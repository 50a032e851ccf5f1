// Package repositories translates CRUD intents into Postgres queries and
// back into domain values.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"go-todo-app/backend/internal/database"
	"go-todo-app/backend/internal/models"
)

// ErrTodoNotFound is returned when no row matches the requested id.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository performs all database operations for todos.
type TodoRepository struct {
	db database.DBInterface
}

// NewTodoRepository creates a new TodoRepository on top of the given pool.
func NewTodoRepository(db database.DBInterface) *TodoRepository {
	return &TodoRepository{db: db}
}

// scanTodo reads one row into a Todo.
func scanTodo(row interface{ Scan(dest ...any) error }) (*models.Todo, error) {
	var t models.Todo
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindAll returns every todo, newest first. The id tiebreak keeps the order
// deterministic for rows created within the same timestamp tick.
func (r *TodoRepository) FindAll(ctx context.Context) ([]*models.Todo, error) {
	query := `SELECT id, title, description, completed, created_at
FROM todos
ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}
	return todos, nil
}

// Create inserts a new todo and returns the stored row, including the id
// and created_at the database assigned.
func (r *TodoRepository) Create(ctx context.Context, title string, description *string) (*models.Todo, error) {
	query := `INSERT INTO todos (title, description)
VALUES ($1, $2)
RETURNING id, title, description, completed, created_at`

	t, err := scanTodo(r.db.QueryRow(ctx, query, title, description))
	if err != nil {
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}
	return t, nil
}

// SetCompleted updates only the completed flag of the matching row and
// returns the updated todo. Repeating the same update is harmless.
func (r *TodoRepository) SetCompleted(ctx context.Context, id int, completed bool) (*models.Todo, error) {
	query := `UPDATE todos
SET completed = $2
WHERE id = $1
RETURNING id, title, description, completed, created_at`

	t, err := scanTodo(r.db.QueryRow(ctx, query, id, completed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("could not update todo: %w", err)
	}
	return t, nil
}

// Delete removes the matching row and reports whether one was removed.
// The caller decides whether a missing row is an error.
func (r *TodoRepository) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.Exec(ctx, "DELETE FROM todos WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("could not delete todo: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
