package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"excelsearch/internal/domain"
	"excelsearch/internal/ui/state"
	"excelsearch/internal/ui/status"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Height   int
	Messages status.Messages

	Count       int
	CountLoaded bool

	SearchPhase state.SearchPhase
	Query       string
	Results     []domain.SearchResult
	Total       int
	SearchErr   error

	IngestText    string
	IngestKind    status.Kind
	StatusMessage string

	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	InputMode  string // "", "search", "upload" or "clear-confirm"
	TextInput  string
	PickerView string
	PickerDir  string

	Busy      bool // any request in flight
	Spinner   string
	ShowHelp  bool
	HelpModel help.Model
	Keys      KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	productRender *ProductRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showCode, showDate bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		productRender: NewProductRenderer(styles, showCode, showDate),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}
	msgs := vs.Messages

	content.WriteString(r.renderTitle(vs))
	content.WriteString("\n\n")

	switch vs.InputMode {
	case "search":
		content.WriteString(r.styles.Prompt.Render(msgs.SearchPrompt))
		content.WriteString(vs.TextInput)
		content.WriteString("\n\n")
	case "clear-confirm":
		content.WriteString(r.styles.Confirm.Render(msgs.ConfirmClear))
		content.WriteString("\n\n")
	case "upload":
		// The picker replaces the result area
		content.WriteString(r.styles.Prompt.Render(msgs.PickFile))
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render(vs.PickerDir))
		content.WriteString("\n\n")
		content.WriteString(vs.PickerView)
		return r.styles.Main.MaxHeight(vs.Height).Render(content.String())
	}

	if line := r.renderIngestStatus(vs); line != "" {
		content.WriteString(line)
		content.WriteString("\n")
	}
	if vs.StatusMessage != "" {
		content.WriteString(r.styles.StatusLoading.Render(vs.StatusMessage))
		content.WriteString("\n")
	}
	if vs.IngestText != "" || vs.StatusMessage != "" {
		content.WriteString("\n")
	}

	content.WriteString(r.renderSearch(vs))

	// Footer help, pushed to the bottom
	if !vs.ShowHelp {
		footer := vs.HelpModel.View(vs.Keys)
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := vs.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(footer))
	}

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if vs.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, r.RenderHelpContent(vs), vs.Height, vs.Width, r.styles.InfoBox)
	}
	return finalContent
}

// renderTitle renders the title with the product count and a spinner on the right
func (r *Renderer) renderTitle(vs ViewState) string {
	logo := r.styles.Title.Render(vs.Messages.Title)

	var right []string
	if vs.Busy && vs.Spinner != "" {
		right = append(right, vs.Spinner)
	}
	if vs.CountLoaded {
		right = append(right, r.styles.Count.Render(vs.Messages.Count(vs.Count)))
	}
	if len(right) == 0 {
		return logo
	}
	rightContent := strings.Join(right, " ")

	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func (r *Renderer) renderIngestStatus(vs ViewState) string {
	switch vs.IngestKind {
	case status.KindError:
		return r.styles.StatusError.Render(vs.IngestText)
	case status.KindSuccess:
		return r.styles.StatusSuccess.Render(vs.IngestText)
	case status.KindProgress:
		return r.styles.StatusLoading.Render(strings.TrimSpace(vs.Spinner + " " + vs.IngestText))
	default:
		return ""
	}
}

// renderSearch renders the area below the status lines for the current search phase
func (r *Renderer) renderSearch(vs ViewState) string {
	msgs := vs.Messages

	switch vs.SearchPhase {
	case state.SearchLoading:
		return r.styles.StatusLoading.Render(strings.TrimSpace(vs.Spinner + " " + msgs.Searching))

	case state.SearchNoResults:
		card := r.styles.Brand.Render(msgs.NoResultsTitle) + "\n" + msgs.NoResults(vs.Query)
		return r.styles.Card.Render(card)

	case state.SearchError:
		return r.styles.ErrorCard.Render(r.styles.StatusError.Render(msgs.SearchError(vs.SearchErr)))

	case state.SearchResults:
		return r.renderResultList(vs)

	default:
		return r.styles.Dim.Render(msgs.SearchHint)
	}
}

// renderResultList renders the visible window of results followed by the
// details of the highlighted one
func (r *Renderer) renderResultList(vs ViewState) string {
	var lines []string
	lines = append(lines, r.styles.Dim.Render(vs.Messages.Results(vs.Total, vs.Query)))
	lines = append(lines, "")

	rowWidth := vs.Width - 4
	total := len(vs.Results)

	height := vs.ViewportHeight
	if height <= 0 {
		height = total
	}
	start := vs.ViewportOffset
	if start < 0 || start >= total {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
	}

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.productRender.RenderResult(i+1, vs.Results[i], i == vs.SelectedIndex, vs.Query, rowWidth))
	}
	if end < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d", total-end)))
	}

	if vs.SelectedIndex >= 0 && vs.SelectedIndex < total {
		lines = append(lines, "")
		lines = append(lines, r.productRender.RenderDetail(vs.Results[vs.SelectedIndex], vs.Messages))
	}

	return strings.Join(lines, "\n")
}

// RenderHelpContent renders the key reference shown in the help popup
func (r *Renderer) RenderHelpContent(vs ViewState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(vs.Messages.HelpTitle))
	b.WriteString("\n")

	var rows []string
	for _, column := range vs.Keys.FullHelp() {
		for _, binding := range column {
			h := binding.Help()
			rows = append(rows, fmt.Sprintf("  %s  %s", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc)))
		}
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}
