package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/pkg/db/cursor"
)

// ErrTodoNotFound is the normal "absent" outcome of an existence check at
// call sites that require the item to exist.
var ErrTodoNotFound = errors.New("Todo does not exist")

type TodoService struct {
	repo   port.TodoRepository
	signer port.UploadSigner
	logger zerolog.Logger
}

func NewTodoService(repo port.TodoRepository, signer port.UploadSigner, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, signer: signer, logger: logger}
}

// List returns one page of the caller's items, newest first. nextKey is
// the opaque token from a previous page, or empty for the first one.
func (s *TodoService) List(ctx context.Context, userID string, limit int32, nextKey string) (*response.TodoPage, error) {
	startKey, err := cursor.Decode(nextKey)

	if err != nil {
		return nil, err
	}

	items, lastKey, err := s.repo.List(ctx, userID, limit, startKey)

	if err != nil {
		return nil, err
	}

	page := &response.TodoPage{Items: items}

	if lastKey != nil {
		encoded := cursor.Encode(lastKey)
		page.NextKey = &encoded
	}

	return page, nil
}

func (s *TodoService) Create(ctx context.Context, userID string, name string, dueDate string) (domain.Todo, error) {
	normalized, err := domain.NormalizeDueDate(dueDate)

	if err != nil {
		return domain.Todo{}, err
	}

	todo := domain.Todo{
		TodoID:    uuid.NewString(),
		UserID:    userID,
		Name:      name,
		DueDate:   normalized,
		Done:      false,
		CreatedAt: domain.FormatTimestamp(time.Now()),
	}

	todo, err = s.repo.Create(ctx, todo)

	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("Repository create failed")
		return domain.Todo{}, err
	}

	return todo, nil
}

// Update replaces the mutable fields in full. The existence check and the
// write are two separate store calls; a concurrent delete between them
// recreates a partial record, which matches the store's upsert behavior.
func (s *TodoService) Update(ctx context.Context, userID string, todoID string, update domain.TodoUpdate) error {
	normalized, err := domain.NormalizeDueDate(update.DueDate)

	if err != nil {
		return err
	}

	update.DueDate = normalized

	_, found, err := s.repo.Exists(ctx, todoID, userID)

	if err != nil {
		return err
	}

	if !found {
		return ErrTodoNotFound
	}

	return s.repo.Update(ctx, userID, todoID, update)
}

func (s *TodoService) Delete(ctx context.Context, todoID string, userID string) error {
	_, found, err := s.repo.Exists(ctx, todoID, userID)

	if err != nil {
		return err
	}

	if !found {
		return ErrTodoNotFound
	}

	return s.repo.Delete(ctx, todoID, userID)
}

// ProvisionUpload hands the caller a time-limited upload URL for the
// item's attachment and records the blob's canonical address on the item.
// The rewrite carries the item's current fields as read by the existence
// check, since the store write replaces all mutable attributes.
func (s *TodoService) ProvisionUpload(ctx context.Context, todoID string, userID string) (string, error) {
	todo, found, err := s.repo.Exists(ctx, todoID, userID)

	if err != nil {
		return "", err
	}

	if !found {
		return "", ErrTodoNotFound
	}

	uploadURL, err := s.signer.SignedPutURL(ctx, todoID)

	if err != nil {
		s.logger.Error().Err(err).Str("todo_id", todoID).Msg("Presign failed")
		return "", err
	}

	update := domain.TodoUpdate{
		Name:          todo.Name,
		DueDate:       todo.DueDate,
		Done:          todo.Done,
		AttachmentURL: s.signer.ObjectURL(todoID),
	}

	if err := s.repo.Update(ctx, userID, todoID, update); err != nil {
		return "", err
	}

	return uploadURL, nil
}
