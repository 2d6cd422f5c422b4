package clog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewConfigDefaultFlagNames(t *testing.T) {
	c := NewConfig()
	if c.Flags.Level != "log-level" || c.Flags.Format != "log-format" {
		t.Errorf("unexpected default flag names: %+v", c.Flags)
	}
}

func TestNewHandlerRejectsUnknownLevel(t *testing.T) {
	c := &Config{Level: "verbose", Format: "text"}
	if _, err := c.NewHandler(&bytes.Buffer{}, false); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestNewHandlerRejectsUnknownFormat(t *testing.T) {
	c := &Config{Level: "info", Format: "xml"}
	if _, err := c.NewHandler(&bytes.Buffer{}, false); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestNewHandlerBracketsLevelWhenColor(t *testing.T) {
	var buf bytes.Buffer
	c := &Config{Level: "info", Format: "text"}
	handler, err := c.NewHandler(&buf, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger := slog.New(handler)
	logger.Info("hello")

	if !strings.Contains(buf.String(), "[INFO]") {
		t.Errorf("expected bracketed level in output, got %q", buf.String())
	}
}

func TestNewHandlerPlainLevelWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	c := &Config{Level: "info", Format: "text"}
	handler, err := c.NewHandler(&buf, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger := slog.New(handler)
	logger.Info("hello")

	if strings.Contains(buf.String(), "[INFO]") {
		t.Errorf("expected unbracketed level in output, got %q", buf.String())
	}
}
