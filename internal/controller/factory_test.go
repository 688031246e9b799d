package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUISelectsImplementation(t *testing.T) {
	cmd := &cobra.Command{}

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Error("expected a TUI when TTY mode is enabled")
	}

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Error("expected a SimpleUI when TTY mode is disabled")
	}
}

func TestIsTTYWithBuffer(t *testing.T) {
	var buf bytes.Buffer

	if IsTTY(&buf) {
		t.Error("a bytes.Buffer is not a terminal")
	}
}
