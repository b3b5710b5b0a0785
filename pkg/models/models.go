// Package models defines the panel API resources panelkit loads.
package models

import (
	"fmt"
	"strings"
)

// User is the account owning the current session.
// The API never serializes the password hash.
type User struct {
	ID       int    `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Staff    bool   `json:"staff" yaml:"staff"`
}

// Server is a game or application server scheduled on a node.
type Server struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	OwnerID int    `json:"owner_id" yaml:"owner_id"`
	NodeID  int    `json:"node_id" yaml:"node_id"`

	// Resource limits; nil means unlimited.
	CPULimit    *int `json:"cpu_limit,omitempty" yaml:"cpu_limit,omitempty"`
	MemoryLimit *int `json:"memory_limit,omitempty" yaml:"memory_limit,omitempty"`
	DiskLimit   *int `json:"disk_limit,omitempty" yaml:"disk_limit,omitempty"`

	PrimaryPort     ServerNodePort   `json:"primary_port" yaml:"primary_port"`
	AdditionalPorts []ServerNodePort `json:"additional_ports,omitempty" yaml:"additional_ports,omitempty"`

	PodID          int      `json:"pod_id" yaml:"pod_id"`
	Image          string   `json:"image" yaml:"image"`
	StartupCommand string   `json:"startup_command" yaml:"startup_command"`
	EnvVars        []EnvVar `json:"env_vars,omitempty" yaml:"env_vars,omitempty"`
}

// Address returns the primary ip:port, or "" when no port is assigned.
func (s *Server) Address() string {
	if s.PrimaryPort.IP == "" || s.PrimaryPort.Port == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", s.PrimaryPort.IP, s.PrimaryPort.Port)
}

// ServerNodePort is a port on the server's node.
type ServerNodePort struct {
	ID   int    `json:"id" yaml:"id"`
	IP   string `json:"ip" yaml:"ip"`
	Port int    `json:"port" yaml:"port"`
}

// EnvVar is an environment variable passed to the server container.
type EnvVar struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// ServerStatus is the lifecycle state reported by the server's node agent.
type ServerStatus string

// Server statuses.
const (
	ServerStatusRunning    ServerStatus = "Running"
	ServerStatusStopped    ServerStatus = "Stopped"
	ServerStatusInstalling ServerStatus = "Installing"
)

// String returns the status name.
func (s ServerStatus) String() string {
	return string(s)
}

// ServerSignal is a power action sent to a server.
type ServerSignal string

// Server signals.
const (
	ServerSignalStart   ServerSignal = "Start"
	ServerSignalStop    ServerSignal = "Stop"
	ServerSignalRestart ServerSignal = "Restart"
	ServerSignalKill    ServerSignal = "Kill"
)

// ServerSignals lists every signal the API accepts.
var ServerSignals = []ServerSignal{
	ServerSignalStart,
	ServerSignalStop,
	ServerSignalRestart,
	ServerSignalKill,
}

// ParseServerSignal matches s case-insensitively against the known signals.
func ParseServerSignal(s string) (ServerSignal, error) {
	for _, sig := range ServerSignals {
		if strings.EqualFold(s, string(sig)) {
			return sig, nil
		}
	}
	return "", fmt.Errorf("unknown server signal %q: must be one of start, stop, restart, kill", s)
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
