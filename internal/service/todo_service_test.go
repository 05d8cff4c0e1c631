// internal/service/todo_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todo-service/internal/domain"
	"todo-service/internal/util"
	"todo-service/pkg/ids"
)

func TestCreateTodoSuccess(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := NewTodoService(repo)

	repo.On("AddTodo", ctx, "user-1", mock.AnythingOfType("*domain.Todo")).Return(nil)

	todo, err := svc.Create(ctx, "user-1", "write report", "2099-01-01")
	require.NoError(t, err)
	assert.True(t, ids.Valid(todo.ID))
	assert.Equal(t, "write report", todo.Title)
	assert.Equal(t, time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), todo.Deadline)
	assert.False(t, todo.Done)
	assert.False(t, todo.CreatedAt.IsZero())

	repo.AssertExpectations(t)
}

func TestCreateTodoAcceptsRFC3339Deadline(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := NewTodoService(repo)

	repo.On("AddTodo", ctx, "user-1", mock.AnythingOfType("*domain.Todo")).Return(nil)

	todo, err := svc.Create(ctx, "user-1", "call mom", "2099-06-15T18:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2099, 6, 15, 16, 30, 0, 0, time.UTC), todo.Deadline)
}

func TestCreateTodoRejectsUnparseableDeadline(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := NewTodoService(repo)

	todo, err := svc.Create(ctx, "user-1", "write report", "next tuesday")
	assert.Nil(t, todo)
	assert.ErrorIs(t, err, util.ErrInvalidDeadline)

	repo.AssertNotCalled(t, "AddTodo", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTodoOwnerMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := NewTodoService(repo)

	repo.On("AddTodo", ctx, "missing", mock.AnythingOfType("*domain.Todo")).Return(util.ErrNotFound)

	_, err := svc.Create(ctx, "missing", "write report", "2099-01-01")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUpdateTodoSuccess(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := NewTodoService(repo)

	deadline := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := domain.NewTodo("revised", deadline)
	repo.On("UpdateTodo", ctx, "user-1", updated.ID, "revised", deadline).Return(updated, nil)

	todo, err := svc.Update(ctx, "user-1", updated.ID, "revised", "2099-01-01")
	require.NoError(t, err)
	assert.Equal(t, "revised", todo.Title)

	repo.AssertExpectations(t)
}

func TestUpdateTodoMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := NewTodoService(repo)

	repo.On("UpdateTodo", ctx, "user-1", "todo-1", "revised", mock.AnythingOfType("time.Time")).
		Return(nil, util.ErrNotFound)

	_, err := svc.Update(ctx, "user-1", "todo-1", "revised", "2099-01-01")
	assert.ErrorIs(t, err, util.ErrTodoNotFound)
}

func TestMarkDoneIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := NewTodoService(repo)

	done := domain.NewTodo("write report", time.Now())
	done.Done = true
	repo.On("MarkTodoDone", ctx, "user-1", done.ID).Return(done, nil).Twice()

	first, err := svc.MarkDone(ctx, "user-1", done.ID)
	require.NoError(t, err)
	assert.True(t, first.Done)

	second, err := svc.MarkDone(ctx, "user-1", done.ID)
	require.NoError(t, err)
	assert.True(t, second.Done)

	repo.AssertExpectations(t)
}

func TestDeleteTodoSuccess(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := NewTodoService(repo)

	repo.On("RemoveTodo", ctx, "user-1", "todo-1").Return(nil)

	assert.NoError(t, svc.Delete(ctx, "user-1", "todo-1"))
	repo.AssertExpectations(t)
}

func TestDeleteTodoMissing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc := NewTodoService(repo)

	repo.On("RemoveTodo", ctx, "user-1", "todo-1").Return(util.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "user-1", "todo-1"), util.ErrTodoNotFound)
}
