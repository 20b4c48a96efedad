package memory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"todoapi/internal/adapter/database/memory"
	"todoapi/internal/core/domain"
	"todoapi/pkg/db/cursor"
)

type TodoRepositorySuite struct {
	suite.Suite
	Repo *memory.TodoRepository
}

var ctx = context.Background()

func (s *TodoRepositorySuite) SetupTest() {
	s.Repo = memory.NewTodoRepository()
}

func TestTodoRepositorySuite(t *testing.T) {
	suite.Run(t, new(TodoRepositorySuite))
}

func (s *TodoRepositorySuite) seed(userID string, n int) []domain.Todo {
	todos := make([]domain.Todo, 0, n)

	for i := 0; i < n; i++ {
		todo, err := s.Repo.Create(ctx, domain.Todo{
			TodoID:    fmt.Sprintf("id-%02d", i),
			UserID:    userID,
			Name:      fmt.Sprintf("Task %d", i),
			DueDate:   "2024-06-01T00:00:00.000Z",
			CreatedAt: fmt.Sprintf("2024-01-01T00:00:%02d.000Z", i),
		})

		assert.NoError(s.T(), err)
		todos = append(todos, todo)
	}

	return todos
}

func (s *TodoRepositorySuite) TestList_Empty() {
	items, nextKey, err := s.Repo.List(ctx, "u1", 10, nil)

	assert.NoError(s.T(), err)
	assert.Empty(s.T(), items)
	assert.Nil(s.T(), nextKey)
}

func (s *TodoRepositorySuite) TestList_DescendingCreationOrder() {
	s.seed("u1", 5)

	items, nextKey, err := s.Repo.List(ctx, "u1", 10, nil)

	assert.NoError(s.T(), err)
	assert.Nil(s.T(), nextKey)
	assert.Len(s.T(), items, 5)

	for i := 1; i < len(items); i++ {
		assert.Greater(s.T(), items[i-1].CreatedAt, items[i].CreatedAt)
	}
}

func (s *TodoRepositorySuite) TestList_OwnershipIsolation() {
	s.seed("u1", 3)
	s.seed("u2", 2)

	items, _, err := s.Repo.List(ctx, "u2", 10, nil)

	assert.NoError(s.T(), err)
	assert.Len(s.T(), items, 2)

	_, found, err := s.Repo.Exists(ctx, "id-00", "u2")

	assert.NoError(s.T(), err)
	assert.True(s.T(), found) // u2 owns its own id-00

	// u2's items are invisible under u1's key space beyond u1's own
	items, _, _ = s.Repo.List(ctx, "u1", 10, nil)
	assert.Len(s.T(), items, 3)
}

func (s *TodoRepositorySuite) TestList_PaginationCompleteness() {
	s.seed("u1", 7)

	seen := map[string]bool{}
	var nextKey *cursor.Key
	pages := 0

	for {
		items, lastKey, err := s.Repo.List(ctx, "u1", 3, nextKey)

		assert.NoError(s.T(), err)

		for _, item := range items {
			assert.False(s.T(), seen[item.TodoID], "duplicate item %s", item.TodoID)
			seen[item.TodoID] = true
		}

		pages++

		if lastKey == nil {
			break
		}

		nextKey = lastKey
	}

	assert.Len(s.T(), seen, 7)
	assert.Equal(s.T(), 3, pages)
}

func (s *TodoRepositorySuite) TestList_ProjectionExcludesOwner() {
	s.seed("u1", 1)

	items, _, _ := s.Repo.List(ctx, "u1", 10, nil)

	assert.Len(s.T(), items, 1)
	assert.Empty(s.T(), items[0].UserID)
}

func (s *TodoRepositorySuite) TestExists_Absent() {
	todo, found, err := s.Repo.Exists(ctx, "missing", "u1")

	assert.NoError(s.T(), err)
	assert.False(s.T(), found)
	assert.Empty(s.T(), todo.TodoID)
}

func (s *TodoRepositorySuite) TestUpdate_ReplacesAllMutableFields() {
	s.seed("u1", 1)

	err := s.Repo.Update(ctx, "u1", "id-00", domain.TodoUpdate{
		Name:    "Renamed",
		DueDate: "2024-07-01T00:00:00.000Z",
		Done:    true,
	})

	assert.NoError(s.T(), err)

	todo, found, _ := s.Repo.Exists(ctx, "id-00", "u1")

	assert.True(s.T(), found)
	assert.Equal(s.T(), "Renamed", todo.Name)
	assert.True(s.T(), todo.Done)
	assert.Empty(s.T(), todo.AttachmentURL)
	assert.Equal(s.T(), "2024-01-01T00:00:00.000Z", todo.CreatedAt) // immutable
}

func (s *TodoRepositorySuite) TestUpdate_ClearsAttachmentWhenOmitted() {
	s.seed("u1", 1)

	err := s.Repo.Update(ctx, "u1", "id-00", domain.TodoUpdate{
		Name:          "With attachment",
		DueDate:       "2024-07-01T00:00:00.000Z",
		AttachmentURL: "https://bucket.s3.amazonaws.com/id-00",
	})
	assert.NoError(s.T(), err)

	// Replace semantics: omitting attachmentUrl on the next write clears it.
	err = s.Repo.Update(ctx, "u1", "id-00", domain.TodoUpdate{
		Name:    "Without attachment",
		DueDate: "2024-07-01T00:00:00.000Z",
	})
	assert.NoError(s.T(), err)

	todo, _, _ := s.Repo.Exists(ctx, "id-00", "u1")

	assert.Empty(s.T(), todo.AttachmentURL)
	assert.False(s.T(), todo.Done)
}

func (s *TodoRepositorySuite) TestDelete_Idempotent() {
	s.seed("u1", 1)

	assert.NoError(s.T(), s.Repo.Delete(ctx, "id-00", "u1"))
	assert.NoError(s.T(), s.Repo.Delete(ctx, "id-00", "u1"))

	_, found, _ := s.Repo.Exists(ctx, "id-00", "u1")
	assert.False(s.T(), found)
}

func (s *TodoRepositorySuite) TestDelete_WrongOwnerIsNoOp() {
	s.seed("u1", 1)

	assert.NoError(s.T(), s.Repo.Delete(ctx, "id-00", "u2"))

	_, found, _ := s.Repo.Exists(ctx, "id-00", "u1")
	assert.True(s.T(), found)
}
