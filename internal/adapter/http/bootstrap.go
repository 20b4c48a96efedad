package http

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"todoapi/internal/adapter/database/dynamo"
	"todoapi/internal/adapter/database/dynamo/repository"
	"todoapi/internal/adapter/http/routes"
	"todoapi/internal/adapter/storage"
	"todoapi/pkg/config"
)

// StartServer constructs the per-process collaborator handles once — store
// client, upload signer — and serves requests until the listener fails.
func StartServer(cfg *config.Config, logger zerolog.Logger) error {
	ctx := context.Background()

	client, err := dynamo.NewClient(ctx, cfg)

	if err != nil {
		return err
	}

	signer, err := storage.NewS3Signer(ctx, cfg)

	if err != nil {
		return err
	}

	todoRepo := repository.NewTodoRepository(client, cfg.TodosTable, cfg.TodosUserIndex)
	container := NewContainer(todoRepo, signer, logger)

	router := routes.SetupRouter(routes.HandlersConfig{
		TodoHandler: container.TodoHandler,
	}, logger, cfg.JWTSecret)

	logger.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Str("table", cfg.TodosTable).
		Msg("Server starting")

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
