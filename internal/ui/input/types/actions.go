package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search actions
type ResubmitSearchAction struct{}

func (a ResubmitSearchAction) Type() string { return "resubmit_search" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Catalog write actions
type SelectFileAction struct {
	Path string
}

func (a SelectFileAction) Type() string { return "select_file" }

type ConfirmClearAction struct{}

func (a ConfirmClearAction) Type() string { return "confirm_clear" }

// BusyAction reports a key that was refused because a catalog write is running
type BusyAction struct{}

func (a BusyAction) Type() string { return "busy" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
