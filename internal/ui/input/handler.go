package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"excelsearch/internal/catalog"
	"excelsearch/internal/ui/input/modes"
	"excelsearch/internal/ui/input/types"
)

// pickerChrome is the number of rows drawn around the file picker
const pickerChrome = 6

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model  // Shared text input for text modes
	picker      *filepicker.Model // Spreadsheet picker for upload mode
}

// New creates a handler whose file picker starts in startDir
func New(startDir string) *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	fp := filepicker.New()
	fp.AllowedTypes = allowedTypes()
	fp.ShowPermissions = false
	fp.ShowHidden = false
	if startDir != "" {
		fp.CurrentDirectory = startDir
	}

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		picker:      &fp,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeUpload] = modes.NewUploadMode()
	h.modes[types.ModeClearConfirm] = modes.NewConfirmMode()

	return h
}

// allowedTypes lists the picker suffixes. The picker matches case-sensitively,
// so upper-case variants are listed too.
func allowedTypes() []string {
	var out []string
	for _, ext := range catalog.AcceptedExtensions {
		out = append(out, ext, strings.ToUpper(ext))
	}
	return out
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		return h.apply(actions, ctx)
	}

	switch h.currentMode {
	case types.ModeSearch:
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		// Always report the text so the view stays in sync
		return []types.Action{types.UpdateTextAction{Text: h.textInput.Value()}}, cmd
	case types.ModeUpload:
		return h.updatePicker(msg, ctx)
	}
	return nil, nil
}

// apply performs mode changes and passes every other action through
func (h *Handler) apply(actions []types.Action, ctx types.Context) ([]types.Action, tea.Cmd) {
	var out []types.Action
	var cmds []tea.Cmd

	for _, action := range actions {
		change, ok := action.(types.ChangeModeAction)
		if !ok {
			out = append(out, action)
			continue
		}

		if current := h.modes[h.currentMode]; current != nil {
			out = append(out, current.Exit(ctx)...)
		}
		h.currentMode = change.Mode
		if next := h.modes[h.currentMode]; next != nil {
			out = append(out, next.Enter(ctx)...)
		}

		switch h.currentMode {
		case types.ModeSearch:
			cmds = append(cmds, textinput.Blink)
		case types.ModeUpload:
			// Re-read the directory so files added since the last visit show up
			cmds = append(cmds, h.picker.Init())
		}
	}

	return out, tea.Batch(cmds...)
}

func (h *Handler) updatePicker(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	var cmd tea.Cmd
	*h.picker, cmd = h.picker.Update(msg)

	// Disabled files are forwarded too so the rejection is shown to the user
	path := ""
	if ok, p := h.picker.DidSelectFile(msg); ok {
		path = p
	} else if ok, p := h.picker.DidSelectDisabledFile(msg); ok {
		path = p
	}
	if path == "" {
		return nil, cmd
	}

	actions, modeCmd := h.apply([]types.Action{
		types.SelectFileAction{Path: path},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, ctx)
	return actions, tea.Batch(cmd, modeCmd)
}

// Update handles non-keyboard messages for the text input and the picker
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if h.currentMode == types.ModeSearch {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	if h.currentMode == types.ModeUpload {
		var cmd tea.Cmd
		*h.picker, cmd = h.picker.Update(msg)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// SetSize sizes the picker to the window minus the surrounding chrome
func (h *Handler) SetSize(width, height int) tea.Cmd {
	height -= pickerChrome
	if height < 3 {
		height = 3
	}
	var cmd tea.Cmd
	*h.picker, cmd = h.picker.Update(tea.WindowSizeMsg{Width: width, Height: height})
	h.textInput.Width = width - 12
	return cmd
}

// ResetPicker forgets the last selection
func (h *Handler) ResetPicker() {
	h.picker.Path = ""
}

// ClearDraft empties the search prompt without closing it
func (h *Handler) ClearDraft() {
	h.textInput.Reset()
}

// Reset returns to normal mode
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return nil
}

// GetMode returns the current input mode
func (h *Handler) GetMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// GetTextInput returns the text input model
func (h *Handler) GetTextInput() *textinput.Model {
	if h == nil {
		return nil
	}
	return h.textInput
}

// PickerView renders the file picker
func (h *Handler) PickerView() string {
	return h.picker.View()
}

// PickerDir returns the directory the picker is showing
func (h *Handler) PickerDir() string {
	return h.picker.CurrentDirectory
}
