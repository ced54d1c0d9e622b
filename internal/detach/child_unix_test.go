//go:build !windows

package detach

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosetsid/internal/session"
)

// TestHelperProcess runs the child phase in a subprocess. It is not a real
// test: it does nothing unless re-executed by runChildPhase.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	for i, arg := range os.Args {
		if arg == "--" {
			os.Exit(RunChild(os.Args[i+1:]))
		}
	}
	os.Exit(2)
}

type childResult struct {
	exitCode int
	pipeMsg  string
	stdout   string
}

// runChildPhase re-executes the test binary into the child phase with the
// handshake pipe on fd 3, the same way Detach spawns the real duplicate.
func runChildPhase(t *testing.T, extraEnv []string, args ...string) childResult {
	t.Helper()

	exe, err := os.Executable()
	require.NoError(t, err)

	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = pr.Close() }()

	cmd := exec.Command(exe, append([]string{"-test.run=^TestHelperProcess$", "--"}, args...)...)
	cmd.Env = append(append(os.Environ(), "GO_WANT_HELPER_PROCESS=1"), extraEnv...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.ExtraFiles = []*os.File{pw}

	require.NoError(t, cmd.Start())
	require.NoError(t, pw.Close())

	msg, err := io.ReadAll(pr)
	require.NoError(t, err)

	res := childResult{pipeMsg: strings.TrimSpace(string(msg))}
	if err := cmd.Wait(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		require.True(t, ok, "child phase: %v", err)
		res.exitCode = exitErr.ExitCode()
	}
	res.stdout = stdout.String()
	return res
}

func TestChildPhaseWritesFileBeforeExec(t *testing.T) {
	sessFile := filepath.Join(t.TempDir(), "sess.txt")

	res := runChildPhase(t, nil, sessFile, "sh", "-c", "cat "+sessFile)

	require.Equal(t, 0, res.exitCode)
	assert.Empty(t, res.pipeMsg, "handshake must be silent on success")

	sid, err := session.Read(sessFile)
	require.NoError(t, err)
	// The replaced command read its own session id back out of the file:
	// the record was complete before the image was replaced.
	assert.Equal(t, strconv.Itoa(sid)+"\n", res.stdout)
}

func TestChildPhaseBadCommand(t *testing.T) {
	dir := t.TempDir()
	sessFile := filepath.Join(dir, "sess.txt")

	res := runChildPhase(t, nil, sessFile, filepath.Join(dir, "no-such-binary"))

	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.pipeMsg, "exec")

	// The session file is written before command resolution is attempted.
	_, err := session.Read(sessFile)
	assert.NoError(t, err)
}

func TestChildPhaseBadSessionDir(t *testing.T) {
	sessFile := filepath.Join(t.TempDir(), "no-such-dir", "sess.txt")
	marker := filepath.Join(t.TempDir(), "ran.txt")

	res := runChildPhase(t, nil, sessFile, "sh", "-c", "touch "+marker)

	assert.Equal(t, 1, res.exitCode)
	assert.Contains(t, res.pipeMsg, "open session file")

	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err), "image replacement must not be attempted")
}

func TestChildPhaseScrubsMarkerFromEnvironment(t *testing.T) {
	sessFile := filepath.Join(t.TempDir(), "sess.txt")

	res := runChildPhase(t, []string{childEnv + "=1"},
		sessFile, "sh", "-c", "echo ${"+childEnv+":-scrubbed}")

	require.Equal(t, 0, res.exitCode)
	// A leaked marker would make any nested gosetsid run skip duplication
	// and record the outer session id.
	assert.Equal(t, "scrubbed\n", res.stdout,
		"launched command must not inherit the child marker")
}
