package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// HelpOps shows the key reference in the ov pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program whose terminal is handed to the pager
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// Available reports whether the pager can take over the terminal
func (h *HelpOps) Available() bool {
	return h != nil && h.program != nil
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Do not write the content back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// helpContent builds the pager text: the key reference plus where the
// client is pointed at
func (m *Model) helpContent() string {
	var b strings.Builder
	b.WriteString(m.renderer.RenderHelpContent(m.buildViewState()))
	b.WriteString("\n\n")
	if m.backendURL != "" {
		fmt.Fprintf(&b, "  backend  %s\n", m.backendURL)
	}
	if m.config != nil && m.config.LogFile != "" {
		fmt.Fprintf(&b, "  log      %s\n", m.config.LogFile)
	}
	return b.String()
}
