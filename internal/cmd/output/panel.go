package output

import (
	"io"

	"github.com/agentstation/panelkit/internal/cmd/table"
	"github.com/agentstation/panelkit/pkg/models"
)

// Servers writes a server list in the given format.
func Servers(w io.Writer, format Format, servers []models.Server) error {
	var data any = servers
	if format.IsTable() {
		data = table.ServersToTableData(servers, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// ServerDetail is the structured form of a single server and its state.
type ServerDetail struct {
	models.Server `yaml:",inline"`
	Status        *models.ServerStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// Server writes one server and its optional status in the given format.
func Server(w io.Writer, format Format, server *models.Server, status *models.ServerStatus) error {
	var data any = ServerDetail{Server: *server, Status: status}
	if format.IsTable() {
		data = table.ServerToTableData(server, status)
	}
	return NewFormatter(format).Format(w, data)
}

// User writes the signed-in user in the given format.
func User(w io.Writer, format Format, user *models.User) error {
	var data any = user
	if format.IsTable() {
		data = table.UserToTableData(user)
	}
	return NewFormatter(format).Format(w, data)
}
