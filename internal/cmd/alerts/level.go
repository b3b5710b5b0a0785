package alerts

import (
	"fmt"

	"github.com/agentstation/panelkit/internal/cmd/emoji"
)

// Level is the severity of an alert.
type Level int

// Levels, most severe first.
const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelSuccess
)

type style struct {
	name  string
	icon  string
	color string // ANSI escape
}

var styles = map[Level]style{
	LevelError:   {"error", emoji.Error, "\033[31m"},
	LevelWarning: {"warning", emoji.Warning, "\033[33m"},
	LevelInfo:    {"info", emoji.Info, "\033[36m"},
	LevelSuccess: {"success", emoji.Success, "\033[32m"},
}

const resetColor = "\033[0m"

// String returns the level name used in structured output.
func (l Level) String() string {
	if s, ok := styles[l]; ok {
		return s.name
	}
	return fmt.Sprintf("unknown(%d)", int(l))
}

// Icon returns the symbol printed before a table-format message.
func (l Level) Icon() string {
	if s, ok := styles[l]; ok {
		return s.icon
	}
	return emoji.Info
}

func (l Level) paint(text string) string {
	s, ok := styles[l]
	if !ok {
		return text
	}
	return s.color + text + resetColor
}
