// Package detach implements the detach-and-replace engine: it duplicates the
// current process into a new OS session, records the session id to a file and
// replaces the duplicate's image with a target command.
//
// Go has no fork primitive, so duplication is emulated by re-executing our
// own binary with an environment marker selecting the child phase. The
// duplicate is placed in a new session at spawn time (Setsid in SysProcAttr),
// which makes it session and process-group leader before any of its code
// runs — the same state a fork+setsid child would be in.
package detach

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// childEnv marks the re-executed duplicate so it runs the child phase
	// instead of parsing the CLI again.
	childEnv = "GOSETSID_CHILD"

	// readyPipeFD is where the duplicate finds the write end of the
	// handshake pipe (the first fd after stdio).
	readyPipeFD = 3
)

// Options describe a single detach-and-replace invocation.
type Options struct {
	// SessionFile receives the new session id, one decimal line.
	SessionFile string
	// Command is the program to replace the detached process with, a bare
	// name resolved via PATH or an explicit path.
	Command string
	// Args are forwarded verbatim to Command.
	Args []string

	Logger *logrus.Logger
}

// IsChild reports whether this process is the re-executed duplicate.
func IsChild() bool {
	return os.Getenv(childEnv) == "1"
}

// Detach runs the parent phase: it spawns the duplicate into a new session
// with inherited stdio, then waits on the handshake pipe until the duplicate
// either reaches image replacement (pipe closes empty, return nil) or fails
// beforehand (pipe carries the diagnostic, returned as an error).
//
// The handshake is the one deliberate deviation from classic fork semantics:
// a fork parent exits 0 immediately and can never report the child's early
// failures. Because duplication here goes through exec anyway, the parent can
// linger for the few syscalls of the child's pre-exec phase and surface
// session-file and command-resolution errors to the invoker. It still never
// waits for the target command itself.
func Detach(opts Options) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate own executable: %w", err)
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("create handshake pipe: %w", err)
	}
	defer func() { _ = pr.Close() }()

	cmd := exec.Command(exe, childArgs(opts)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), childEnv+"=1")
	cmd.SysProcAttr = sysProcAttrForDetach()
	attachHandshake(cmd, pw)

	opts.Logger.WithFields(logrus.Fields{
		"session_file": opts.SessionFile,
		"command":      opts.Command,
	}).Debug("duplicating into new session")

	if err := cmd.Start(); err != nil {
		_ = pw.Close()
		return fmt.Errorf("duplicate process: %w", err)
	}

	// Close our copy of the write end so the read below sees EOF as soon
	// as the child closes its copy.
	_ = pw.Close()

	msg, err := io.ReadAll(pr)
	if err != nil {
		return fmt.Errorf("read handshake pipe: %w", err)
	}

	// The duplicate is a session leader now; it must not be reaped by us.
	if err := cmd.Process.Release(); err != nil {
		opts.Logger.WithError(err).Debug("failed to release duplicate process handle")
	}

	if len(msg) > 0 {
		return errors.New(strings.TrimSpace(string(msg)))
	}

	opts.Logger.WithField("pid", cmd.Process.Pid).Debug("detached child handed off")
	return nil
}

// childArgs rebuilds the positional argument vector for the duplicate. Flags
// the parent consumed are deliberately not forwarded: the child phase parses
// positionally and nothing else.
func childArgs(opts Options) []string {
	args := make([]string, 0, 2+len(opts.Args))
	args = append(args, opts.SessionFile, opts.Command)
	args = append(args, opts.Args...)
	return args
}
