package device

import (
	"fmt"
	"strings"
)

type ActionType string

const (
	ActionRunCommand     ActionType = "run_command"
	ActionReboot         ActionType = "reboot"
	ActionInstallUpdates ActionType = "install_updates"
	ActionPushWallpaper  ActionType = "push_wallpaper"
	ActionScanUpdates    ActionType = "scan_updates"
	ActionShutdown       ActionType = "shutdown"
	ActionLock           ActionType = "lock"
)

// ActionDefinition describes how an action is offered and what it needs.
type ActionDefinition struct {
	Type        ActionType
	Label       string
	Description string
	// InputField is the payload key the user's input is stored under; empty
	// when the action takes no input.
	InputField       string
	InputLabel       string
	InputPlaceholder string
	// MissingInputMessage is shown when the input is blank.
	MissingInputMessage string
	// Dangerous actions ask for confirmation even without input.
	Dangerous bool
}

func (s ActionDefinition) RequiresInput() bool { return s.InputField != "" }

// RequiresConfirmation reports whether the action goes through a dialog
// before it is queued.
func (s ActionDefinition) RequiresConfirmation() bool { return s.Dangerous || s.RequiresInput() }

var catalog = map[ActionType]ActionDefinition{
	ActionRunCommand: {
		Type:                ActionRunCommand,
		Label:               "Run Command",
		Description:         "Execute a PowerShell command on this device",
		InputField:          "command",
		InputLabel:          "PowerShell Command",
		InputPlaceholder:    "Get-Process | Select-Object -First 10",
		MissingInputMessage: "Please enter a command",
	},
	ActionReboot: {
		Type:        ActionReboot,
		Label:       "Reboot",
		Description: "Restart this device",
		Dangerous:   true,
	},
	ActionInstallUpdates: {
		Type:        ActionInstallUpdates,
		Label:       "Install Updates",
		Description: "Install all pending Windows updates",
	},
	ActionPushWallpaper: {
		Type:                ActionPushWallpaper,
		Label:               "Push Wallpaper",
		Description:         "Set desktop wallpaper from URL",
		InputField:          "wallpaper_url",
		InputLabel:          "Wallpaper URL",
		InputPlaceholder:    "https://example.com/wallpaper.jpg",
		MissingInputMessage: "Please enter a wallpaper URL",
	},
	ActionScanUpdates: {
		Type:        ActionScanUpdates,
		Label:       "Scan for Updates",
		Description: "Trigger a Windows Update scan",
	},
	ActionShutdown: {
		Type:        ActionShutdown,
		Label:       "Shutdown",
		Description: "Shut down this device",
		Dangerous:   true,
	},
	ActionLock: {
		Type:        ActionLock,
		Label:       "Lock Screen",
		Description: "Lock the device screen",
	},
}

// MenuGroups is the action menu layout; groups are separated visually.
var MenuGroups = [][]ActionType{
	{ActionScanUpdates, ActionInstallUpdates},
	{ActionRunCommand, ActionPushWallpaper},
	{ActionLock, ActionReboot, ActionShutdown},
}

func (t ActionType) String() string { return string(t) }

func (t ActionType) IsValid() bool {
	_, ok := catalog[t]
	return ok
}

func (t ActionType) Definition() (ActionDefinition, bool) {
	s, ok := catalog[t]
	return s, ok
}

func NewActionType(s string) (ActionType, error) {
	t := ActionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown action type: %s", s)
	}
	return t, nil
}

// Dialog is the confirmation shown before an action is queued.
type Dialog struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	InputLabel       string `json:"input_label,omitempty"`
	InputPlaceholder string `json:"input_placeholder,omitempty"`
	ConfirmLabel     string `json:"confirm_label"`
	Destructive      bool   `json:"destructive"`
}

// ConfirmActionLabel is the confirm button of every action dialog.
const ConfirmActionLabel = "Queue Action"

// ConfirmationDialog builds the dialog for running the action on the named
// device.
func (s ActionDefinition) ConfirmationDialog(deviceName string) Dialog {
	switch s.Type {
	case ActionRunCommand:
		return Dialog{
			Title:            "Run Command on " + deviceName,
			Description:      "Enter a PowerShell command to execute on this device. The command will be queued and executed when the device checks in.",
			InputLabel:       s.InputLabel,
			InputPlaceholder: s.InputPlaceholder,
			ConfirmLabel:     ConfirmActionLabel,
		}
	case ActionPushWallpaper:
		return Dialog{
			Title:            "Push Wallpaper to " + deviceName,
			Description:      "Enter the URL of an image to set as the desktop wallpaper.",
			InputLabel:       s.InputLabel,
			InputPlaceholder: s.InputPlaceholder,
			ConfirmLabel:     ConfirmActionLabel,
		}
	}
	return Dialog{
		Title:        fmt.Sprintf("%s %s?", s.Label, deviceName),
		Description:  s.Description + ". This action will be queued and executed when the device checks in.",
		ConfirmLabel: ConfirmActionLabel,
		Destructive:  s.Dangerous,
	}
}

// BuildPayload validates the user's input and returns the action payload.
// Input is checked for blankness after trimming but stored as given.
func (s ActionDefinition) BuildPayload(input string) (map[string]any, error) {
	if !s.RequiresInput() {
		return map[string]any{}, nil
	}
	if strings.TrimSpace(input) == "" {
		return nil, &InputError{Message: s.MissingInputMessage}
	}
	return map[string]any{s.InputField: input}, nil
}

// InputError is a rejected action input; Message is user-facing.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }
