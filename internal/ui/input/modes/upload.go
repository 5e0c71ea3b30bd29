package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"excelsearch/internal/ui/input/types"
)

// UploadMode is active while the file picker is open. Keys it does not
// consume are fed to the picker by the input handler.
type UploadMode struct{}

func NewUploadMode() *UploadMode {
	return &UploadMode{}
}

func (m *UploadMode) Name() string {
	return "upload"
}

func (m *UploadMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *UploadMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *UploadMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return nil, false
}
