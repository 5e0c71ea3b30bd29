package handlers

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"excelsearch/internal/catalog"
	"excelsearch/internal/domain"
	"excelsearch/internal/eventbus"
	"excelsearch/internal/ui/commands"
	"excelsearch/internal/ui/state"
)

// TickMsg drives the loading spinner
type TickMsg time.Time

// ResultHandler applies backend results to the application state
type ResultHandler struct {
	state        *state.AppState
	bus          eventbus.EventBus
	resetPicker  func()
	clearDraft   func()
	refreshCount func() tea.Cmd
}

// NewResultHandler creates a new result handler. resetPicker is called after
// every finished upload; clearDraft empties the search prompt whenever the
// catalog changed; refreshCount fetches the count after a wipe.
func NewResultHandler(appState *state.AppState, bus eventbus.EventBus, resetPicker, clearDraft func(), refreshCount func() tea.Cmd) *ResultHandler {
	return &ResultHandler{
		state:        appState,
		bus:          bus,
		resetPicker:  resetPicker,
		clearDraft:   clearDraft,
		refreshCount: refreshCount,
	}
}

// Handle processes msg if it is a backend result. The bool reports whether
// msg was one.
func (h *ResultHandler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case commands.SearchFinishedMsg:
		h.searchFinished(msg)
		return nil, true
	case commands.UploadFinishedMsg:
		h.uploadFinished(msg)
		return nil, true
	case commands.CountFetchedMsg:
		h.countFetched(msg)
		return nil, true
	case commands.CatalogClearedMsg:
		return h.catalogCleared(msg), true
	}
	return nil, false
}

func (h *ResultHandler) searchFinished(msg commands.SearchFinishedMsg) {
	if msg.Err != nil {
		log.Printf("[ui] search %q failed (%s): %v", msg.Query, catalog.ErrorKind(msg.Err), msg.Err)
		h.state.Search.Fail(msg.Query, msg.Err)
		h.state.ResetSelection()
		h.publish(eventbus.SearchFailedEvent{Query: msg.Query, Err: msg.Err})
		return
	}

	h.state.Search.Resolve(msg.Query, msg.Response)
	h.state.ResetSelection()
	h.publish(eventbus.SearchCompletedEvent{
		Query:   msg.Query,
		Results: len(h.state.Search.Results()),
		Total:   h.state.Search.Total(),
	})
}

func (h *ResultHandler) uploadFinished(msg commands.UploadFinishedMsg) {
	defer h.reset()

	if msg.Err != nil {
		log.Printf("[ui] upload %s failed (%s): %v", msg.FileName, catalog.ErrorKind(msg.Err), msg.Err)
		h.state.Ingest.Fail(msg.Err)
		h.publish(eventbus.UploadFailedEvent{FileName: msg.FileName, Err: msg.Err})
		return
	}

	resp := msg.Response
	if resp == nil {
		resp = &domain.UploadResponse{}
	}
	h.state.Ingest.Succeed(resp)
	h.state.Count.SetIngested(resp.ProductsCount)
	h.invalidateSearch()

	h.publish(eventbus.UploadCompletedEvent{
		FileName:      msg.FileName,
		Message:       resp.Message,
		ProductsCount: resp.ProductsCount,
	})
	h.publish(eventbus.CountUpdatedEvent{Count: h.state.Count.Count(), Source: "upload"})
}

func (h *ResultHandler) countFetched(msg commands.CountFetchedMsg) {
	if msg.Err != nil {
		log.Printf("[ui] count unavailable (%s): %v", catalog.ErrorKind(msg.Err), msg.Err)
		h.publish(eventbus.ErrorEvent{Message: "count fetch failed", Err: msg.Err})
		return
	}
	h.state.Count.SetFetched(msg.Count)
	h.publish(eventbus.CountUpdatedEvent{Count: h.state.Count.Count(), Source: "fetch"})
}

func (h *ResultHandler) catalogCleared(msg commands.CatalogClearedMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("[ui] clear failed (%s): %v", catalog.ErrorKind(msg.Err), msg.Err)
		h.state.Ingest.Fail(msg.Err)
		h.publish(eventbus.ErrorEvent{Message: "catalog clear failed", Err: msg.Err})
		return nil
	}

	message := ""
	if msg.Response != nil {
		message = msg.Response.Message
	}
	h.state.Ingest.Cleared(message)
	h.invalidateSearch()
	h.publish(eventbus.CatalogClearedEvent{Message: message})

	if h.refreshCount == nil {
		return nil
	}
	return h.refreshCount()
}

// invalidateSearch drops the query, the results and any draft typed against
// the old catalog
func (h *ResultHandler) invalidateSearch() {
	h.state.InvalidateSearch()
	if h.clearDraft != nil {
		h.clearDraft()
	}
}

func (h *ResultHandler) reset() {
	if h.resetPicker != nil {
		h.resetPicker()
	}
}

func (h *ResultHandler) publish(event eventbus.DomainEvent) {
	if h.bus != nil {
		h.bus.Publish(event)
	}
}
