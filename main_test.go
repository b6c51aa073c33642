package main

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorjacobs/ha-multisensor/config"
)

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	stdout, _, err := execute("abc123", "Front Porch")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "ABC123\nFront Porch\n\n\nlight:\n"))
	assert.Contains(t, stdout, "front_porch_multisensor:")
	assert.True(t, strings.HasSuffix(stdout, "    - light.front_porch_led\n\n"))
}

func TestRootCommandDashLeadingArguments(t *testing.T) {
	tests := []struct {
		name         string
		sensorId     string
		friendlyName string
		header       string
		groupKey     string
	}{
		{"dash in sensor id", "-abc1", "Front Porch", "-ABC1\nFront Porch\n\n\n", "front_porch_multisensor:"},
		{"dash in friendly name", "abc1", "-Porch", "ABC1\n-Porch\n\n\n", "-porch_multisensor:"},
		{"flag lookalike", "--verbose", "--help", "--VERBOSE\n--help\n\n\n", "--help_multisensor:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(tt.sensorId, tt.friendlyName)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(stdout, tt.header))
			assert.Contains(t, stdout, "multi/"+strings.ToUpper(tt.sensorId)+"/state")
			assert.Contains(t, stdout, tt.groupKey)
		})
	}
}

func TestRootCommandMissingArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no arguments", []string{}, config.ErrMissingSensorId},
		{"only sensor id", []string{"abc123"}, config.ErrMissingFriendlyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, config.ErrMissingArgument)
			assert.Empty(t, stdout)
		})
	}
}

func TestRootCommandDebugLogsToStderr(t *testing.T) {
	t.Setenv(logLevelEnv, "debug")

	stdout, stderr, err := execute("abc123", "Front Porch")
	require.NoError(t, err)

	assert.NotContains(t, stdout, "Rendering multisensor configuration")
	assert.Contains(t, stderr, "Rendering multisensor configuration")
	assert.Contains(t, stderr, "sensor_id=ABC123")
	assert.Contains(t, stderr, "slug=front_porch")
}

func TestRootCommandWarnsOnBlankInput(t *testing.T) {
	stdout, stderr, err := execute("abc123", "")
	require.NoError(t, err)

	assert.Contains(t, stderr, "friendly name is blank")
	assert.True(t, strings.HasPrefix(stdout, "ABC123\n\n\n\n"))
}

func TestRootCommandInvalidLogLevel(t *testing.T) {
	t.Setenv(logLevelEnv, "loud")

	stdout, stderr, err := execute("abc123", "Front Porch")
	require.NoError(t, err)

	assert.Contains(t, stderr, "invalid LOG_LEVEL")
	assert.True(t, strings.HasPrefix(stdout, "ABC123\nFront Porch\n"))
}

const (
	runMainEnv     = "HA_MULTISENSOR_RUN_MAIN"
	runMainArgsEnv = "HA_MULTISENSOR_ARGS"
)

func TestMainExitStatusOnMissingArguments(t *testing.T) {
	if os.Getenv(runMainEnv) == "1" {
		os.Args = append([]string{"ha-multisensor"}, strings.Fields(os.Getenv(runMainArgsEnv))...)
		main()
		return
	}

	tests := []struct {
		name string
		args string
	}{
		{"no arguments", ""},
		{"only sensor id", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			cmd := exec.Command(os.Args[0], "-test.run=^TestMainExitStatusOnMissingArguments$")
			cmd.Env = append(os.Environ(), runMainEnv+"=1", runMainArgsEnv+"="+tt.args)
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()

			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 1, exitErr.ExitCode())
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "missing argument")
		})
	}
}

func TestMainExitStatusOnSuccess(t *testing.T) {
	var stdout bytes.Buffer

	cmd := exec.Command(os.Args[0], "-test.run=^TestMainExitStatusOnMissingArguments$")
	cmd.Env = append(os.Environ(), runMainEnv+"=1", runMainArgsEnv+"=abc123 Porch")
	cmd.Stdout = &stdout

	require.NoError(t, cmd.Run())
	assert.True(t, strings.HasPrefix(stdout.String(), "ABC123\nPorch\n\n\nlight:\n"))
}
