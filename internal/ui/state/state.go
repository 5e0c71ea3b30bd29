package state

// AppState contains all the application state
type AppState struct {
	Search *SearchState
	Ingest *IngestState
	Count  *CountTracker

	// Result list navigation
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	// UI state
	ShowHelp      bool
	StatusMessage string // transient notices that are not part of either flow
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Search:         &SearchState{},
		Ingest:         &IngestState{},
		Count:          &CountTracker{},
		ViewportHeight: 10,
	}
}

// InvalidateSearch drops query and results after the catalog changed
func (s *AppState) InvalidateSearch() {
	s.Search.Reset()
	s.ResetSelection()
}

// ResetSelection moves the highlight back to the best match
func (s *AppState) ResetSelection() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// MoveSelection moves the highlight by delta within the current results
func (s *AppState) MoveSelection(delta int) {
	n := len(s.Search.Results())
	if n == 0 {
		s.ResetSelection()
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= n {
		s.SelectedIndex = n - 1
	}
	s.ensureSelectedVisible()
}

// SelectEdge jumps to the first (top) or last result
func (s *AppState) SelectEdge(top bool) {
	n := len(s.Search.Results())
	if n == 0 || top {
		s.ResetSelection()
		return
	}
	s.SelectedIndex = n - 1
	s.ensureSelectedVisible()
}

// SetViewportHeight updates the number of result rows that fit on screen
func (s *AppState) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	s.ViewportHeight = h
	s.ensureSelectedVisible()
}

func (s *AppState) ensureSelectedVisible() {
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.SelectedIndex - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}
