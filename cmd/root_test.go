package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "kbridge" {
		t.Errorf("Expected Use to be 'kbridge', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}

	// Same template Execute() installs.
	testCmd.SetVersionTemplate(`{{printf "kbridge version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)

	testCmd.SetArgs([]string{"--version"})
	err := testCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	output := buf.String()
	expected := "kbridge version 1.0.0\n"
	if output != expected {
		t.Errorf("Expected version output %q, got %q", expected, output)
	}
}

func TestSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	expectedCommands := []string{"connect", "configs", "version", "self-update"}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestConnectCommandFlags(t *testing.T) {
	connectCmd := newConnectCmd()

	for _, name := range []string{"namespace", "pod", "copy", "no-forward"} {
		if connectCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected connect command to define flag --%s", name)
		}
	}

	if connectCmd.RunE == nil {
		t.Error("Expected RunE function to be set")
	}
}

func TestConnectCommandHelp(t *testing.T) {
	connectCmd := newConnectCmd()
	var buf bytes.Buffer
	connectCmd.SetOut(&buf)
	connectCmd.SetErr(&buf)
	connectCmd.SetArgs([]string{"--help"})

	err := connectCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing connect help: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "interactive wizard") {
		t.Errorf("Help output should contain the long description. Got: %q", output)
	}

	if !strings.Contains(output, "--no-forward") {
		t.Errorf("Help output should list the flags. Got: %q", output)
	}
}
