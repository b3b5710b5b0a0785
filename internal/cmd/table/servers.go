package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/panelkit/pkg/models"
)

// ServersToTableData converts servers to table format.
func ServersToTableData(servers []models.Server, wide bool) Data {
	headers := []string{"ID", "Name", "Address", "CPU", "Memory", "Disk"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Node", "Owner", "Image", "Ports")
		align = append(align, AlignRight, AlignRight, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(servers))
	for _, s := range servers {
		row := []string{
			strconv.Itoa(s.ID),
			s.Name,
			orDash(s.Address()),
			FormatCPU(s.CPULimit),
			FormatMegabytes(s.MemoryLimit),
			FormatMegabytes(s.DiskLimit),
		}
		if wide {
			row = append(row,
				strconv.Itoa(s.NodeID),
				strconv.Itoa(s.OwnerID),
				orDash(s.Image),
				FormatPorts(s.AdditionalPorts),
			)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// ServerToTableData converts one server and its optional status to a
// property/value table.
func ServerToTableData(s *models.Server, status *models.ServerStatus) Data {
	state := Placeholder
	if status != nil {
		state = status.String()
	}

	rows := [][]string{
		{"ID", strconv.Itoa(s.ID)},
		{"Name", s.Name},
		{"Status", state},
		{"Address", orDash(s.Address())},
		{"Node", strconv.Itoa(s.NodeID)},
		{"Owner", strconv.Itoa(s.OwnerID)},
		{"CPU", FormatCPU(s.CPULimit)},
		{"Memory", FormatMegabytes(s.MemoryLimit)},
		{"Disk", FormatMegabytes(s.DiskLimit)},
		{"Image", orDash(s.Image)},
		{"Startup", orDash(s.StartupCommand)},
		{"Ports", FormatPorts(s.AdditionalPorts)},
	}
	for _, env := range s.EnvVars {
		rows = append(rows, []string{"Env " + env.Key, env.Value})
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// UserToTableData converts the signed-in user to table format.
func UserToTableData(u *models.User) Data {
	role := "user"
	if u.Staff {
		role = "staff"
	}
	return Data{
		Headers: []string{"ID", "Username", "Email", "Role"},
		Rows: [][]string{{
			strconv.Itoa(u.ID),
			u.Username,
			orDash(u.Email),
			role,
		}},
		ColumnAlignment: []Align{AlignRight},
	}
}

// FormatCPU formats a CPU limit given in percent of one core.
func FormatCPU(limit *int) string {
	if limit == nil {
		return "unlimited"
	}
	return fmt.Sprintf("%d%%", *limit)
}

// FormatMegabytes formats a memory or disk limit given in megabytes.
func FormatMegabytes(limit *int) string {
	if limit == nil {
		return "unlimited"
	}
	mb := *limit
	if mb >= 1024 && mb%1024 == 0 {
		return fmt.Sprintf("%d GB", mb/1024)
	}
	return fmt.Sprintf("%d MB", mb)
}

// FormatPorts lists ports as comma separated ip:port pairs.
func FormatPorts(ports []models.ServerNodePort) string {
	if len(ports) == 0 {
		return Placeholder
	}
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		parts = append(parts, fmt.Sprintf("%s:%d", p.IP, p.Port))
	}
	return strings.Join(parts, ", ")
}
