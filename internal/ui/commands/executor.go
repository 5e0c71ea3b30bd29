package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"excelsearch/internal/catalog"
	"excelsearch/internal/eventbus"
	"excelsearch/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, state *state.AppState, bus eventbus.EventBus, backend catalog.Backend) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Ctx:     ctx,
			State:   state,
			Bus:     bus,
			Backend: backend,
		},
	}
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(query string) tea.Cmd {
	cmd := NewSearchCommand(e.ctx, query)
	return cmd.Execute()
}

// ExecuteUpload creates and executes an upload command
func (e *Executor) ExecuteUpload(path string) tea.Cmd {
	cmd := NewUploadCommand(e.ctx, path)
	return cmd.Execute()
}

// ExecuteCount creates and executes a count command
func (e *Executor) ExecuteCount() tea.Cmd {
	cmd := NewCountCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteClear creates and executes a clear command
func (e *Executor) ExecuteClear() tea.Cmd {
	cmd := NewClearCommand(e.ctx)
	return cmd.Execute()
}
