package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"excelsearch/internal/ui/input/types"
)

// ConfirmMode asks before the catalog is wiped. Both y/n and the Turkish
// e/h answers are accepted.
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "clear-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "y", "Y", "e", "E":
		return []types.Action{
			types.ConfirmClearAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "h", "H", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Swallow everything else until the question is answered
	return nil, true
}
