package views

import (
	"github.com/charmbracelet/bubbles/key"

	"excelsearch/internal/ui/status"
)

// KeyMap describes the normal-mode bindings for the help footer and popup
type KeyMap struct {
	Search   key.Binding
	Resubmit key.Binding
	Reset    key.Binding
	Upload   key.Binding
	Clear    key.Binding
	Navigate key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// NewKeyMap builds the key map with descriptions from msgs
func NewKeyMap(msgs status.Messages) KeyMap {
	return KeyMap{
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", msgs.KeySearch)),
		Resubmit: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", msgs.KeyResubmit)),
		Reset:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", msgs.KeyReset)),
		Upload:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", msgs.KeyUpload)),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", msgs.KeyClear)),
		Navigate: key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓ j/k", msgs.KeyNavigate)),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", msgs.KeyHelp)),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", msgs.KeyQuit)),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Upload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Resubmit, k.Reset, k.Navigate},
		{k.Upload, k.Clear},
		{k.Help, k.Quit},
	}
}
