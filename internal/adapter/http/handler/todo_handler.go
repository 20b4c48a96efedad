package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	. "todoapi/internal/adapter/http/helper"
	. "todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/pkg/db/cursor"
)

const defaultListLimit = 20

type TodoHandler struct {
	svc    port.TodoService
	logger zerolog.Logger
}

func NewTodoHandler(svc port.TodoService, logger zerolog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, logger: logger}
}

// GetTodos lists the caller's items, newest first, one page at a time.
// Query parameters: limit (positive, default 20) and nextKey (opaque
// cursor from the previous page).
func (t *TodoHandler) GetTodos(c *gin.Context) {
	userID := c.GetString("x-user-id")

	if userID == "" {
		SendError(c, http.StatusBadRequest, "userId is missing")
		return
	}

	limit := int64(defaultListLimit)

	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.ParseInt(limitStr, 10, 32)

		if err != nil || parsed <= 0 {
			SendError(c, http.StatusBadRequest, "Limit should be positive")
			return
		}

		limit = parsed
	}

	page, err := t.svc.List(c.Request.Context(), userID, int32(limit), c.Query("nextKey"))

	if err != nil {
		if errors.Is(err, cursor.ErrInvalidCursor) {
			SendError(c, http.StatusBadRequest, "invalid cursor")
			return
		}

		t.logger.Error().Err(err).Str("user_id", userID).Msg("GetTodos failed")
		SendError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	SendSuccess(c, http.StatusOK, page)
}

func (t *TodoHandler) CreateTodo(c *gin.Context) {
	userID := c.GetString("x-user-id")

	var params request.CreateTodoRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendError(c, http.StatusBadRequest, "dueDate or name is missing")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendError(c, http.StatusBadRequest, "dueDate or name is missing")
		return
	}

	todo, err := t.svc.Create(c.Request.Context(), userID, params.Name, params.DueDate)

	if err != nil {
		if errors.Is(err, domain.ErrUnparseableDueDate) {
			SendError(c, http.StatusBadRequest, err.Error())
			return
		}

		t.logger.Error().Err(err).Str("user_id", userID).Msg("CreateTodo failed")
		SendError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	SendSuccess(c, http.StatusCreated, response.CreateTodoResponse{Item: todo})
}

func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	userID := c.GetString("x-user-id")
	todoID := c.Param("todoId")

	var params request.UpdateTodoRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendError(c, http.StatusBadRequest, "dueDate or name is missing")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendError(c, http.StatusBadRequest, "dueDate or name is missing")
		return
	}

	// Omitted done/attachmentUrl arrive as their zero values and replace
	// whatever is stored. This is a replace, not a merge.
	update := domain.TodoUpdate{
		Name:          params.Name,
		DueDate:       params.DueDate,
		Done:          params.Done,
		AttachmentURL: params.AttachmentURL,
	}

	if err := t.svc.Update(c.Request.Context(), userID, todoID, update); err != nil {
		switch {
		case errors.Is(err, service.ErrTodoNotFound):
			SendError(c, http.StatusNotFound, "Todo does not exist")
		case errors.Is(err, domain.ErrUnparseableDueDate):
			SendError(c, http.StatusBadRequest, err.Error())
		default:
			t.logger.Error().Err(err).Str("todo_id", todoID).Msg("UpdateTodo failed")
			SendError(c, http.StatusInternalServerError, "internal server error")
		}

		return
	}

	SendEmpty(c, http.StatusOK)
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	userID := c.GetString("x-user-id")
	todoID := c.Param("todoId")

	if err := t.svc.Delete(c.Request.Context(), todoID, userID); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			SendError(c, http.StatusNotFound, "Todo does not exist")
			return
		}

		t.logger.Error().Err(err).Str("todo_id", todoID).Msg("DeleteTodo failed")
		SendError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	SendEmpty(c, http.StatusNoContent)
}

// GenerateUploadURL provisions an attachment upload: a time-limited signed
// PUT URL for the blob store, with the item's attachmentUrl set to the
// blob's eventual canonical address.
func (t *TodoHandler) GenerateUploadURL(c *gin.Context) {
	userID := c.GetString("x-user-id")
	todoID := c.Param("todoId")

	uploadURL, err := t.svc.ProvisionUpload(c.Request.Context(), todoID, userID)

	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			SendError(c, http.StatusNotFound, "Todo does not exist")
			return
		}

		t.logger.Error().Err(err).Str("todo_id", todoID).Msg("GenerateUploadUrl failed")
		SendError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	SendSuccess(c, http.StatusOK, response.UploadURLResponse{UploadURL: uploadURL})
}
