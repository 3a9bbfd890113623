package application

import (
	"context"
	"fmt"

	"github.com/abcu-edu/advising-assistant/pkg/domain"
	"github.com/abcu-edu/advising-assistant/pkg/ports"
	"github.com/abcu-edu/advising-assistant/pkg/utils"
)

// CommandHandler handles execution of commands against the catalog. The
// catalog is single-threaded; handlers run every command synchronously on the
// caller's goroutine.
type CommandHandler struct {
	catalog *domain.Catalog
	logger  utils.Logger
}

// NewCommandHandler creates a new CommandHandler instance.
func NewCommandHandler(catalog *domain.Catalog, logger utils.Logger) *CommandHandler {
	return &CommandHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// Command defines the interface for all commands.
type Command interface {
	Execute(ctx context.Context, handler *CommandHandler) error
}

// LoadCatalogCommand replaces the catalog's contents from a row source.
type LoadCatalogCommand struct {
	Source ports.RowSource
}

// Execute executes the LoadCatalogCommand.
func (c *LoadCatalogCommand) Execute(ctx context.Context, handler *CommandHandler) error {
	handler.logger.Info(fmt.Sprintf("Executing LoadCatalogCommand from %s", c.Source.Name()))
	if err := handler.catalog.Load(ctx, c.Source); err != nil {
		handler.logger.Error(fmt.Sprintf("Failed to load catalog from %s: %v", c.Source.Name(), err))
		return err
	}
	return nil
}

// ExecuteCommand executes a command and returns its error.
func (h *CommandHandler) ExecuteCommand(ctx context.Context, cmd Command) error {
	return cmd.Execute(ctx, h)
}
