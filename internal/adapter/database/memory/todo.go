package memory

import (
	"context"
	"sort"
	"sync"

	"todoapi/internal/core/domain"
	"todoapi/pkg/db/cursor"
)

// TodoRepository keeps items in process memory behind the same contract as
// the DynamoDB adapter, including cursor pagination. Tests run the full
// access-layer semantics against it.
type TodoRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]domain.Todo // userID -> todoID -> item
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{items: make(map[string]map[string]domain.Todo)}
}

func (r *TodoRepository) List(ctx context.Context, userID string, limit int32, startKey *cursor.Key) ([]domain.Todo, *cursor.Key, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make([]domain.Todo, 0, len(r.items[userID]))

	for _, todo := range r.items[userID] {
		owned = append(owned, todo)
	}

	// Owner-index order: creation time descending, id as tie breaker.
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt != owned[j].CreatedAt {
			return owned[i].CreatedAt > owned[j].CreatedAt
		}
		return owned[i].TodoID > owned[j].TodoID
	})

	start := 0

	if startKey != nil {
		start = len(owned)

		for i, todo := range owned {
			if todo.TodoID == startKey.TodoID {
				start = i + 1
				break
			}

			// The keyed item is gone; resume from its old position.
			if todo.CreatedAt < startKey.CreatedAt {
				start = i
				break
			}
		}
	}

	end := start + int(limit)

	if end > len(owned) {
		end = len(owned)
	}

	page := make([]domain.Todo, 0, end-start)

	for _, todo := range owned[start:end] {
		todo.UserID = "" // projection excludes the owner
		page = append(page, todo)
	}

	if end < len(owned) {
		last := owned[end-1]

		return page, &cursor.Key{TodoID: last.TodoID, UserID: userID, CreatedAt: last.CreatedAt}, nil
	}

	return page, nil, nil
}

func (r *TodoRepository) Exists(ctx context.Context, todoID string, userID string) (domain.Todo, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.items[userID][todoID]

	return todo, ok, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.items[todo.UserID] == nil {
		r.items[todo.UserID] = make(map[string]domain.Todo)
	}

	r.items[todo.UserID][todo.TodoID] = todo

	return todo, nil
}

// Update mirrors the store's upsert behavior: updating a missing key
// recreates a partial record rather than failing.
func (r *TodoRepository) Update(ctx context.Context, userID string, todoID string, update domain.TodoUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.items[userID] == nil {
		r.items[userID] = make(map[string]domain.Todo)
	}

	todo := r.items[userID][todoID]
	todo.TodoID = todoID
	todo.UserID = userID
	todo.Name = update.Name
	todo.DueDate = update.DueDate
	todo.Done = update.Done
	todo.AttachmentURL = update.AttachmentURL

	r.items[userID][todoID] = todo

	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, todoID string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items[userID], todoID)

	return nil
}
