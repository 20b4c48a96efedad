package http

import (
	"github.com/rs/zerolog"

	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
)

type Container struct {
	TodoRepo    port.TodoRepository
	TodoService port.TodoService
	TodoHandler *handler.TodoHandler
}

func NewContainer(repo port.TodoRepository, signer port.UploadSigner, logger zerolog.Logger) *Container {
	todoSvc := service.NewTodoService(repo, signer, logger)
	todoHandler := handler.NewTodoHandler(todoSvc, logger)

	return &Container{
		TodoRepo:    repo,
		TodoService: todoSvc,
		TodoHandler: todoHandler,
	}
}
