package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"excelsearch/internal/domain"
	"excelsearch/internal/ui/status"
)

// ProductRenderer handles rendering of search result rows
type ProductRenderer struct {
	styles   *Styles
	showCode bool
	showDate bool
}

// NewProductRenderer creates a new product renderer
func NewProductRenderer(styles *Styles, showCode, showDate bool) *ProductRenderer {
	return &ProductRenderer{
		styles:   styles,
		showCode: showCode,
		showDate: showDate,
	}
}

// RenderResult renders one ranked result as a single line:
// rank, brand, description, price and relevance percentage
func (r *ProductRenderer) RenderResult(rank int, result domain.SearchResult, isSelected bool, query string, width int) string {
	p := result.Product
	percent := result.Percent()

	rankText := fmt.Sprintf("%-4s", fmt.Sprintf("#%d", rank))
	scoreText := fmt.Sprintf("%4s", fmt.Sprintf("%d%%", percent))
	priceText := p.Fiyat
	codeText := ""
	if r.showCode && p.Kod != "" {
		codeText = fmt.Sprintf("  [%s]", p.Kod)
	}

	left := fmt.Sprintf("%s %s  %s%s", rankText, p.Marka, p.Aciklama, codeText)
	right := fmt.Sprintf("%s  %s", priceText, scoreText)

	// Trim the description side when the row would overflow
	truncated := false
	if width > 0 {
		room := width - lipgloss.Width(right) - 2
		if room > 1 && lipgloss.Width(left) > room {
			left = truncate(left, room)
			truncated = true
		}
	}

	gap := 2
	if width > 0 {
		if g := width - lipgloss.Width(left) - lipgloss.Width(right); g > gap {
			gap = g
		}
	}

	if isSelected {
		return r.styles.SelectionBg.Render(left + strings.Repeat(" ", gap) + right)
	}

	styledLeft := left
	if !truncated {
		styledLeft = r.styles.Rank.Render(rankText) + " " +
			r.styles.Brand.Render(r.highlightMatch(p.Marka, query)) + "  " +
			r.highlightMatch(p.Aciklama, query) + r.styles.Dim.Render(codeText)
	}
	scoreStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ScoreColor(percent)))
	return styledLeft + strings.Repeat(" ", gap) + r.styles.Price.Render(priceText) + "  " + scoreStyle.Render(scoreText)
}

// RenderDetail renders the fields of the highlighted product
func (r *ProductRenderer) RenderDetail(result domain.SearchResult, msgs status.Messages) string {
	p := result.Product
	parts := []string{
		r.styles.Brand.Render(p.Marka),
		fmt.Sprintf("%s: %s", msgs.PriceLabel, p.Fiyat),
	}
	if p.Kod != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", msgs.CodeLabel, p.Kod))
	}
	if r.showDate && p.UploadDate != "" {
		parts = append(parts, fmt.Sprintf("%s: %s", msgs.UploadedLabel, p.UploadDate))
	}
	return r.styles.Dim.Render(strings.Join(parts, " · "))
}

// highlightMatch highlights every query word found in text
func (r *ProductRenderer) highlightMatch(text, query string) string {
	if query == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	// Case folding can change byte lengths; skip highlighting then
	if len(lowerText) != len(text) {
		return text
	}

	marked := make([]bool, len(text))
	found := false
	for _, word := range strings.Fields(strings.ToLower(query)) {
		index := strings.Index(lowerText, word)
		if index == -1 {
			continue
		}
		found = true
		for i := index; i < index+len(word); i++ {
			marked[i] = true
		}
	}
	if !found {
		return text
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		j := i
		for j < len(text) && marked[j] == marked[i] {
			j++
		}
		if marked[i] {
			b.WriteString(r.styles.Highlight.Render(text[i:j]))
		} else {
			b.WriteString(text[i:j])
		}
		i = j
	}
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
