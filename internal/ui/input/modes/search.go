package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"excelsearch/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

// Enter opens the prompt pre-filled with the last submitted query
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.SetValue(ctx.CurrentQuery())
		m.textInput.CursorEnd()
	}
	return nil
}
