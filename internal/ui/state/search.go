package state

import (
	"strings"

	"excelsearch/internal/domain"
)

// SearchPhase is the tag of the search state union
type SearchPhase int

const (
	SearchIdle SearchPhase = iota
	SearchLoading
	SearchResults
	SearchNoResults
	SearchError
)

func (p SearchPhase) String() string {
	switch p {
	case SearchIdle:
		return "idle"
	case SearchLoading:
		return "loading"
	case SearchResults:
		return "results"
	case SearchNoResults:
		return "no-results"
	case SearchError:
		return "error"
	default:
		return "unknown"
	}
}

// SearchState holds the search flow. The phase decides which payload is
// meaningful: results only in SearchResults, err only in SearchError.
type SearchState struct {
	phase   SearchPhase
	query   string
	results []domain.SearchResult
	total   int
	err     error
	issued  int
}

// Submit trims query and moves to Loading. A blank query clears the state
// instead and reports false; no request must be sent for it.
func (s *SearchState) Submit(query string) (string, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		s.Reset()
		return "", false
	}
	s.phase = SearchLoading
	s.query = q
	s.results = nil
	s.total = 0
	s.err = nil
	s.issued++
	return q, true
}

// Resolve applies a successful response for query. Responses are applied in
// arrival order, so a late response overwrites whatever is shown.
func (s *SearchState) Resolve(query string, resp *domain.SearchResponse) {
	s.query = query
	s.err = nil
	if resp == nil || len(resp.Results) == 0 {
		s.phase = SearchNoResults
		s.results = nil
		s.total = 0
		return
	}
	s.phase = SearchResults
	s.results = resp.Results
	s.total = resp.TotalCount
	if s.total < len(resp.Results) {
		s.total = len(resp.Results)
	}
}

// Fail clears the results and records err for query
func (s *SearchState) Fail(query string, err error) {
	s.phase = SearchError
	s.query = query
	s.results = nil
	s.total = 0
	s.err = err
}

// Reset returns to Idle with an empty query. Used when the query is cleared
// and when the catalog changes underneath the results.
func (s *SearchState) Reset() {
	s.phase = SearchIdle
	s.query = ""
	s.results = nil
	s.total = 0
	s.err = nil
}

// Phase returns the current phase
func (s *SearchState) Phase() SearchPhase { return s.phase }

// Query returns the query the current phase belongs to
func (s *SearchState) Query() string { return s.query }

// Loading reports whether a search is outstanding
func (s *SearchState) Loading() bool { return s.phase == SearchLoading }

// Results returns the ranked results in backend order, or nil outside SearchResults
func (s *SearchState) Results() []domain.SearchResult {
	if s.phase != SearchResults {
		return nil
	}
	return s.results
}

// Total returns the backend reported match count for the current results
func (s *SearchState) Total() int {
	if s.phase != SearchResults {
		return 0
	}
	return s.total
}

// Err returns the failure behind SearchError
func (s *SearchState) Err() error {
	if s.phase != SearchError {
		return nil
	}
	return s.err
}

// Issued returns how many requests Submit has authorized
func (s *SearchState) Issued() int { return s.issued }
