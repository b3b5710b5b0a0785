package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/panelkit/internal/utils/ptr"
	"github.com/agentstation/panelkit/pkg/models"
)

func TestServersToTableData(t *testing.T) {
	servers := []models.Server{
		{
			ID:          1,
			Name:        "alpha",
			NodeID:      3,
			OwnerID:     7,
			CPULimit:    ptr.Int(150),
			MemoryLimit: ptr.Int(2048),
			PrimaryPort: models.ServerNodePort{IP: "10.0.0.1", Port: 25565},
			AdditionalPorts: []models.ServerNodePort{
				{IP: "10.0.0.1", Port: 25575},
			},
			Image: "itzg/minecraft-server",
		},
		{ID: 2, Name: "beta"},
	}

	t.Run("narrow", func(t *testing.T) {
		data := ServersToTableData(servers, false)
		assert.Equal(t, []string{"ID", "Name", "Address", "CPU", "Memory", "Disk"}, data.Headers)
		require.Len(t, data.Rows, 2)
		assert.Equal(t, []string{"1", "alpha", "10.0.0.1:25565", "150%", "2 GB", "unlimited"}, data.Rows[0])
		assert.Equal(t, []string{"2", "beta", "-", "unlimited", "unlimited", "unlimited"}, data.Rows[1])
		assert.Len(t, data.ColumnAlignment, len(data.Headers))
	})

	t.Run("wide", func(t *testing.T) {
		data := ServersToTableData(servers, true)
		assert.Len(t, data.Headers, 10)
		assert.Equal(t, []string{"3", "7", "itzg/minecraft-server", "10.0.0.1:25575"}, data.Rows[0][6:])
		assert.Equal(t, []string{"0", "0", "-", "-"}, data.Rows[1][6:])
	})

	t.Run("empty", func(t *testing.T) {
		data := ServersToTableData(nil, false)
		assert.Empty(t, data.Rows)
	})
}

func TestServerToTableData(t *testing.T) {
	server := &models.Server{
		ID:             9,
		Name:           "gamma",
		DiskLimit:      ptr.Int(500),
		StartupCommand: "./start.sh",
		EnvVars:        []models.EnvVar{{Key: "EULA", Value: "TRUE"}},
	}
	data := ServerToTableData(server, ptr.To(models.ServerStatusRunning))
	assert.Equal(t, []string{"Property", "Value"}, data.Headers)
	assert.Contains(t, data.Rows, []string{"Status", "Running"})
	assert.Contains(t, data.Rows, []string{"Disk", "500 MB"})
	assert.Contains(t, data.Rows, []string{"Startup", "./start.sh"})
	assert.Contains(t, data.Rows, []string{"Env EULA", "TRUE"})

	data = ServerToTableData(server, nil)
	assert.Contains(t, data.Rows, []string{"Status", "-"})
}

func TestUserToTableData(t *testing.T) {
	data := UserToTableData(&models.User{ID: 4, Username: "root", Staff: true})
	require.Len(t, data.Rows, 1)
	assert.Equal(t, []string{"4", "root", "-", "staff"}, data.Rows[0])
}
