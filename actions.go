package main

import (
	"fmt"
	"strings"
)

// ActionDefinition binds an action name to its default keys and the help
// text shown for it.
type ActionDefinition struct {
	Name        string
	Keys        []string
	Description string
}

var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "KeyQ"}, "Quit"},
	{"next", []string{"Space", "ArrowRight", "KeyN"}, "Next image in directory"},
	{"previous", []string{"Backspace", "ArrowLeft", "KeyP"}, "Previous image in directory"},
	{"rotate_cw", []string{"KeyR"}, "Rotate 90 degrees clockwise"},
	{"rotate_ccw", []string{"Shift+KeyR", "KeyL"}, "Rotate 90 degrees counter-clockwise"},
	{"zoom_in", []string{"Equal", "Shift+Equal"}, "Zoom in"},
	{"zoom_out", []string{"Minus"}, "Zoom out"},
	{"zoom_reset", []string{"Key0"}, "Zoom to 100%"},
	{"fit", []string{"KeyF"}, "Fit image to window"},
	{"fullscreen", []string{"Enter", "KeyZ"}, "Toggle fullscreen"},
	{"info", []string{"KeyI"}, "Show/hide image info"},
}

// ActionExecutor maps action names onto InputActions calls; it is the single
// dispatch point shared by every binding source.
type ActionExecutor struct{}

func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction runs the named action. Returns false for unknown names.
func (ae *ActionExecutor) ExecuteAction(action string, actions InputActions, state InputState) bool {
	switch action {
	case "exit":
		actions.Exit()
	case "next":
		actions.NavigateNext()
	case "previous":
		actions.NavigatePrevious()
	case "rotate_cw":
		if state.HasImage() {
			actions.RotateClockwise()
		}
	case "rotate_ccw":
		if state.HasImage() {
			actions.RotateCounterClockwise()
		}
	case "zoom_in":
		actions.ZoomIn()
	case "zoom_out":
		actions.ZoomOut()
	case "zoom_reset":
		actions.ZoomReset()
	case "fit":
		actions.FitToView()
	case "fullscreen":
		actions.ToggleFullscreen()
	case "info":
		actions.ToggleInfo()
	default:
		return false
	}
	return true
}

var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns action names mapped to help text.
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns action names mapped to default key strings.
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// FormatKeyHelp renders the default key bindings for the usage output, one
// line per action in definition order.
func FormatKeyHelp() string {
	var b strings.Builder
	descriptions := GetActionDescriptions()
	keybindings := GetDefaultKeybindings()
	for _, def := range actionDefinitions {
		fmt.Fprintf(&b, "  %-24s %s\n", strings.Join(keybindings[def.Name], ", "), descriptions[def.Name])
	}
	return b.String()
}
