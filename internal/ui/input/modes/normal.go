package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"excelsearch/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyEsc:
		// Esc clears the current search
		if ctx.CurrentQuery() == "" {
			return nil, false
		}
		return []types.Action{types.ClearSearchAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		// The prompt stays closed while a search is loading
		if ctx.SearchLoading() {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "s":
		if ctx.SearchLoading() || ctx.CurrentQuery() == "" {
			return nil, true
		}
		return []types.Action{types.ResubmitSearchAction{}}, true

	case "u":
		if ctx.IngestBusy() {
			return []types.Action{types.BusyAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeUpload}}, true

	case "x":
		if ctx.IngestBusy() {
			return []types.Action{types.BusyAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeClearConfirm}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
