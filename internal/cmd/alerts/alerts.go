// Package alerts reports the outcome of panel actions (signals, logout) in
// the command's output format.
package alerts

import "fmt"

// Alert is the outcome of one action.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// NewSuccess returns a success alert with a formatted message.
func NewSuccess(format string, args ...any) *Alert {
	return &Alert{Level: LevelSuccess, Message: fmt.Sprintf(format, args...)}
}

// NewWarning returns a warning alert with a formatted message.
func NewWarning(format string, args ...any) *Alert {
	return &Alert{Level: LevelWarning, Message: fmt.Sprintf(format, args...)}
}

// WithError attaches the failure behind a warning or error alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails appends indented detail lines.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns the icon and message, followed by the error if any.
func (a *Alert) String() string {
	s := a.Level.Icon() + " " + a.Message
	if a.Err != nil {
		s += ": " + a.Err.Error()
	}
	return s
}
