package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agentstation/panelkit/internal/cmd/output"
)

// Writer writes alerts in an output format.
type Writer struct {
	writer io.Writer
	format output.Format
	color  bool
}

// NewWriter creates a Writer for the given format. Table output is colored
// when w is a terminal and noColor is false.
func NewWriter(w io.Writer, format output.Format, noColor bool) *Writer {
	return &Writer{
		writer: w,
		format: format,
		color:  !noColor && isTerminal(w),
	}
}

// alertData represents alert data for structured output.
type alertData struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Write writes alert in the configured format.
func (w *Writer) Write(alert *Alert) error {
	if !w.format.IsTable() {
		data := alertData{
			Level:   alert.Level.String(),
			Message: alert.Message,
			Details: alert.Details,
		}
		if alert.Err != nil {
			data.Error = alert.Err.Error()
		}
		return output.NewFormatter(w.format).Format(w.writer, data)
	}

	message := alert.String()
	if w.color {
		message = alert.Level.paint(message)
	}
	if _, err := fmt.Fprintln(w.writer, message); err != nil {
		return err
	}
	for _, detail := range alert.Details {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", detail); err != nil {
			return err
		}
	}
	return nil
}

// isTerminal reports whether w is a terminal (for color support).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
