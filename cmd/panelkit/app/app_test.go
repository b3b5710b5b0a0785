package app

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	isolate(t)

	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_Client_Singleton verifies that Client() returns the same instance.
func TestApp_Client_Singleton(t *testing.T) {
	isolate(t)

	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	c1, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed: %v", err)
	}
	c2, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed on second call: %v", err)
	}
	if c1 != c2 {
		t.Error("Client() returned different instances, expected singleton")
	}
}

// TestApp_Client_ThreadSafe verifies concurrent Client() calls are safe.
func TestApp_Client_ThreadSafe(t *testing.T) {
	isolate(t)

	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	const goroutines = 50
	var wg sync.WaitGroup
	errs := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = app.Client()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("goroutine %d: Client() failed: %v", i, err)
		}
	}
}

// TestApp_Client_InvalidBaseURL verifies configuration errors surface.
func TestApp_Client_InvalidBaseURL(t *testing.T) {
	isolate(t)

	app, err := New("1.0.0", "test", "2024-01-01", "test",
		WithConfig(&Config{BaseURL: "ftp://panel", SessionCookie: "id"}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := app.Client(); err == nil {
		t.Error("expected error for ftp base URL")
	}
}

// TestApp_WithLogger verifies the logger option.
func TestApp_WithLogger(t *testing.T) {
	isolate(t)

	logger := zerolog.Nop()
	app, err := New("1.0.0", "test", "2024-01-01", "test", WithLogger(&logger))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if app.Logger() != &logger {
		t.Error("WithLogger option not applied")
	}
}

// TestApp_OutputFormat verifies explicit formats are returned as-is.
func TestApp_OutputFormat(t *testing.T) {
	isolate(t)

	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(&Config{Format: "yaml"}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if got := app.OutputFormat(); got != "yaml" {
		t.Errorf("OutputFormat() = %s, want yaml", got)
	}
}
