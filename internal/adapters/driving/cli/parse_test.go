package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTranscript(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0600))
	return path
}

func TestParseCmd_Use(t *testing.T) {
	assert.Equal(t, "parse [transcript]", parseCmd.Use)
}

func TestParseCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"parse"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestParseCmd_PrintsRecord(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"parse", writeTranscript(t, "transcript.pdf")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "نواف بن سلطان العتيبي")
	assert.Contains(t, buf.String(), "451007699")
	assert.Contains(t, buf.String(), "CSC 1201")
	assert.Contains(t, buf.String(), "MATH 1102")
}

func TestParseCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"parse", "--json", writeTranscript(t, "transcript.pdf")})
	defer func() {
		rootCmd.SetArgs(nil)
		parseJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"student\"")
	assert.Contains(t, buf.String(), "\"courses\"")
}

func TestParseCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"parse", filepath.Join(t.TempDir(), "missing.pdf")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading transcript")
}

func TestParseCmd_ServiceNotConfigured(t *testing.T) {
	oldService := workflowService
	oldFactory := workflowFactory
	workflowService = nil
	workflowFactory = nil
	defer func() {
		workflowService = oldService
		workflowFactory = oldFactory
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"parse", writeTranscript(t, "transcript.pdf")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workflow service not configured")
}
