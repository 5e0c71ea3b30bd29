package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"excelsearch/internal/catalog"
	"excelsearch/internal/domain"
	"excelsearch/internal/eventbus"
	"excelsearch/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx     context.Context
	State   *state.AppState
	Bus     eventbus.EventBus
	Backend catalog.Backend
}

func (c *CommandContext) publish(event eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

func (c *CommandContext) baseContext() context.Context {
	if c.Ctx != nil {
		return c.Ctx
	}
	return context.Background()
}

// SearchFinishedMsg carries the outcome of one search request
type SearchFinishedMsg struct {
	Query    string
	Response *domain.SearchResponse
	Err      error
}

// UploadFinishedMsg carries the outcome of one upload request
type UploadFinishedMsg struct {
	FileName string
	Response *domain.UploadResponse
	Err      error
}

// CountFetchedMsg carries the outcome of a count request
type CountFetchedMsg struct {
	Count int
	Err   error
}

// CatalogClearedMsg carries the outcome of a catalog wipe
type CatalogClearedMsg struct {
	Response *domain.ClearResponse
	Err      error
}

// SearchCommand submits a query
type SearchCommand struct {
	ctx   *CommandContext
	query string
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, query string) *SearchCommand {
	return &SearchCommand{
		ctx:   ctx,
		query: query,
	}
}

// Execute moves the search flow to Loading and returns the request. A blank
// query clears the results and returns nil.
func (c *SearchCommand) Execute() tea.Cmd {
	q, ok := c.ctx.State.Search.Submit(c.query)
	c.ctx.State.ResetSelection()
	if !ok {
		return nil
	}
	c.ctx.publish(eventbus.SearchRequestedEvent{Query: q})

	backend := c.ctx.Backend
	parent := c.ctx.baseContext()
	return func() tea.Msg {
		resp, err := backend.Search(parent, q)
		return SearchFinishedMsg{Query: q, Response: resp, Err: err}
	}
}

// UploadCommand validates a picked file and uploads it
type UploadCommand struct {
	ctx  *CommandContext
	path string
}

// NewUploadCommand creates a new upload command
func NewUploadCommand(ctx *CommandContext, path string) *UploadCommand {
	return &UploadCommand{
		ctx:  ctx,
		path: path,
	}
}

// Execute validates the file and, when it passes, returns the upload request.
// Rejected files never reach the backend.
func (c *UploadCommand) Execute() tea.Cmd {
	ok, err := c.ctx.State.Ingest.Select(c.path)
	if err != nil {
		if errors.Is(err, state.ErrCatalogBusy) {
			log.Printf("[ui] ignoring %s: %v", c.path, err)
			return nil
		}
		c.ctx.publish(eventbus.UploadRejectedEvent{FileName: filepath.Base(c.path), Err: err})
		return nil
	}
	if !ok {
		return nil
	}

	name := c.ctx.State.Ingest.FileName()
	c.ctx.publish(eventbus.UploadStartedEvent{FileName: name})

	backend := c.ctx.Backend
	parent := c.ctx.baseContext()
	path := c.path
	return func() tea.Msg {
		resp, err := upload(parent, backend, path)
		return UploadFinishedMsg{FileName: name, Response: resp, Err: err}
	}
}

func upload(ctx context.Context, backend catalog.Backend, path string) (*domain.UploadResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	return backend.Upload(ctx, filepath.Base(path), f)
}

// CountCommand fetches the product count
type CountCommand struct {
	ctx *CommandContext
}

// NewCountCommand creates a new count command
func NewCountCommand(ctx *CommandContext) *CountCommand {
	return &CountCommand{ctx: ctx}
}

// Execute returns the count request
func (c *CountCommand) Execute() tea.Cmd {
	backend := c.ctx.Backend
	parent := c.ctx.baseContext()
	return func() tea.Msg {
		n, err := backend.Count(parent)
		return CountFetchedMsg{Count: n, Err: err}
	}
}

// ClearCommand wipes the catalog
type ClearCommand struct {
	ctx *CommandContext
}

// NewClearCommand creates a new clear command
func NewClearCommand(ctx *CommandContext) *ClearCommand {
	return &ClearCommand{ctx: ctx}
}

// Execute moves the write flow to Clearing and returns the request. Nothing
// is sent while an upload is running.
func (c *ClearCommand) Execute() tea.Cmd {
	if err := c.ctx.State.Ingest.BeginClear(); err != nil {
		log.Printf("[ui] clear refused: %v", err)
		return nil
	}
	c.ctx.publish(eventbus.ClearRequestedEvent{})

	backend := c.ctx.Backend
	parent := c.ctx.baseContext()
	return func() tea.Msg {
		resp, err := backend.Clear(parent)
		return CatalogClearedMsg{Response: resp, Err: err}
	}
}
