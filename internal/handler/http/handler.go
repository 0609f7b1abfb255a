package http

import (
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/organizemymind/go-user-api/internal/graph"
	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/internal/service"
)

type Handler struct {
	services *service.Services
	schema   *graphql.Schema

	logger *logger.Logger
}

// NewHandler builds the HTTP transport: the GraphQL schema is parsed here,
// once, so a schema/resolver mismatch fails startup instead of a request.
func NewHandler(services *service.Services, logger *logger.Logger) (*Handler, error) {
	schema, err := graph.NewSchema(services, logger)
	if err != nil {
		return nil, fmt.Errorf("error parsing GraphQL schema: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		schema:   schema,
		logger:   logger,
	}, nil
}
