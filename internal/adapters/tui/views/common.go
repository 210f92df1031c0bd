package views

import (
	"resourcedex/internal/domain"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching

// SwitchToFilterMsg opens the filter picker
type SwitchToFilterMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToBrowserMsg returns to the results table
type SwitchToBrowserMsg struct{}

// FilterSelectedMsg is sent by the picker when a value is chosen.
// An empty Value clears the filter on Field.
type FilterSelectedMsg struct {
	Field domain.Field
	Value string
}
