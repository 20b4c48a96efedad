package port

import (
	"context"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
	"todoapi/pkg/db/cursor"
)

// TodoRepository is the item access layer over the keyed store. Exists
// reports absence through the bool, never as an error. Update does not
// re-check existence; Delete on a missing key is a no-op.
type TodoRepository interface {
	List(ctx context.Context, userID string, limit int32, startKey *cursor.Key) ([]domain.Todo, *cursor.Key, error)
	Exists(ctx context.Context, todoID string, userID string) (domain.Todo, bool, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, userID string, todoID string, update domain.TodoUpdate) error
	Delete(ctx context.Context, todoID string, userID string) error
}

type TodoService interface {
	List(ctx context.Context, userID string, limit int32, nextKey string) (*response.TodoPage, error)
	Create(ctx context.Context, userID string, name string, dueDate string) (domain.Todo, error)
	Update(ctx context.Context, userID string, todoID string, update domain.TodoUpdate) error
	Delete(ctx context.Context, todoID string, userID string) error
	ProvisionUpload(ctx context.Context, todoID string, userID string) (string, error)
}

// UploadSigner is the blob-store collaborator: time-limited signed upload
// URLs plus the deterministic public address of the eventual object.
type UploadSigner interface {
	SignedPutURL(ctx context.Context, key string) (string, error)
	ObjectURL(key string) string
}
