package input

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"excelsearch/internal/ui/input/types"
)

type fakeContext struct {
	query   string
	loading bool
	busy    bool
	results int
}

func (c *fakeContext) CurrentQuery() string { return c.query }
func (c *fakeContext) SearchLoading() bool  { return c.loading }
func (c *fakeContext) IngestBusy() bool     { return c.busy }
func (c *fakeContext) ResultCount() int     { return c.results }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(h *Handler, ctx types.Context, s string) []types.Action {
	var actions []types.Action
	for _, r := range s {
		a, _ := h.HandleKey(runes(string(r)), ctx)
		actions = append(actions, a...)
	}
	return actions
}

// drain runs cmd and every command it batches, returning the messages
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestSearchPrompt(t *testing.T) {
	h := New(t.TempDir())
	ctx := &fakeContext{}

	_, _ = h.HandleKey(runes("/"), ctx)
	require.Equal(t, types.ModeSearch, h.GetMode())

	typeText(h, ctx, "lamba")
	assert.Equal(t, "lamba", h.GetTextInput().Value())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Contains(t, actions, types.SubmitTextAction{Text: "lamba", Mode: types.ModeSearch})
	assert.Equal(t, types.ModeNormal, h.GetMode())
}

func TestSearchPromptPrefillsLastQuery(t *testing.T) {
	h := New(t.TempDir())
	ctx := &fakeContext{query: "sinyal"}

	_, _ = h.HandleKey(runes("/"), ctx)
	assert.Equal(t, "sinyal", h.GetTextInput().Value())
}

func TestSearchPromptCancel(t *testing.T) {
	h := New(t.TempDir())
	ctx := &fakeContext{}

	_, _ = h.HandleKey(runes("/"), ctx)
	typeText(h, ctx, "abc")
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)

	assert.Contains(t, actions, types.CancelTextAction{})
	assert.Equal(t, types.ModeNormal, h.GetMode())
	assert.Empty(t, h.GetTextInput().Value())
}

func TestSearchPromptClosedWhileLoading(t *testing.T) {
	h := New(t.TempDir())
	ctx := &fakeContext{query: "lamba", loading: true}

	actions, _ := h.HandleKey(runes("/"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())

	actions, _ = h.HandleKey(runes("s"), ctx)
	assert.Empty(t, actions)
}

func TestNormalModeKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		ctx  *fakeContext
		want []types.Action
	}{
		{"resubmit", runes("s"), &fakeContext{query: "lamba"}, []types.Action{types.ResubmitSearchAction{}}},
		{"resubmit without query", runes("s"), &fakeContext{}, nil},
		{"esc clears search", tea.KeyMsg{Type: tea.KeyEsc}, &fakeContext{query: "lamba"}, []types.Action{types.ClearSearchAction{}}},
		{"esc without query", tea.KeyMsg{Type: tea.KeyEsc}, &fakeContext{}, nil},
		{"down", runes("j"), &fakeContext{}, []types.Action{types.NavigateAction{Direction: "down"}}},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, &fakeContext{}, []types.Action{types.NavigateAction{Direction: "up"}}},
		{"last", runes("G"), &fakeContext{}, []types.Action{types.NavigateAction{Direction: "end"}}},
		{"upload while busy", runes("u"), &fakeContext{busy: true}, []types.Action{types.BusyAction{}}},
		{"clear while busy", runes("x"), &fakeContext{busy: true}, []types.Action{types.BusyAction{}}},
		{"help", runes("?"), &fakeContext{}, []types.Action{types.ToggleHelpAction{}}},
		{"quit", runes("q"), &fakeContext{}, []types.Action{types.QuitAction{}}},
		{"force quit", tea.KeyMsg{Type: tea.KeyCtrlC}, &fakeContext{}, []types.Action{types.QuitAction{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(t.TempDir())
			actions, _ := h.HandleKey(tt.key, tt.ctx)
			assert.Equal(t, tt.want, actions)
			assert.Equal(t, types.ModeNormal, h.GetMode())
		})
	}
}

func TestClearConfirmation(t *testing.T) {
	for _, yes := range []string{"y", "e"} {
		t.Run("confirm "+yes, func(t *testing.T) {
			h := New(t.TempDir())
			ctx := &fakeContext{}

			_, _ = h.HandleKey(runes("x"), ctx)
			require.Equal(t, types.ModeClearConfirm, h.GetMode())

			actions, _ := h.HandleKey(runes(yes), ctx)
			assert.Equal(t, []types.Action{types.ConfirmClearAction{}}, actions)
			assert.Equal(t, types.ModeNormal, h.GetMode())
		})
	}

	t.Run("other keys are swallowed", func(t *testing.T) {
		h := New(t.TempDir())
		ctx := &fakeContext{}
		_, _ = h.HandleKey(runes("x"), ctx)

		actions, _ := h.HandleKey(runes("q"), ctx)
		assert.Empty(t, actions)
		assert.Equal(t, types.ModeClearConfirm, h.GetMode())

		actions, _ = h.HandleKey(runes("h"), ctx)
		assert.Empty(t, actions)
		assert.Equal(t, types.ModeNormal, h.GetMode())
	})
}

func openPicker(t *testing.T, h *Handler, ctx types.Context) {
	t.Helper()
	_, cmd := h.HandleKey(runes("u"), ctx)
	require.Equal(t, types.ModeUpload, h.GetMode())
	require.NotNil(t, cmd)
	for _, msg := range drain(cmd) {
		h.Update(msg)
	}
}

func TestPickerSelection(t *testing.T) {
	for _, name := range []string{"data.xlsx", "report.docx"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))

			h := New(dir)
			ctx := &fakeContext{}
			h.SetSize(80, 30)
			openPicker(t, h, ctx)

			actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
			assert.Equal(t, []types.Action{types.SelectFileAction{Path: filepath.Join(dir, name)}}, actions)
			assert.Equal(t, types.ModeNormal, h.GetMode())
		})
	}
}

func TestPickerCancel(t *testing.T) {
	h := New(t.TempDir())
	ctx := &fakeContext{}
	openPicker(t, h, ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
}

func TestAllowedTypesCoverUpperCase(t *testing.T) {
	assert.ElementsMatch(t, []string{".xlsx", ".XLSX", ".xls", ".XLS"}, allowedTypes())
}
