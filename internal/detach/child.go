package detach

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"gosetsid/internal/session"
)

// RunChild runs the child phase of a detach: query the session id, write the
// session file, resolve the target command, signal readiness and replace the
// process image. args is os.Args[1:] of the duplicate: session-file path,
// command, then the command's arguments.
//
// The returned value is the process exit code. On Unix a successful image
// replacement never returns here; the Windows emulation returns the target
// command's own exit code.
func RunChild(args []string) int {
	ready := os.NewFile(readyPipeFD, "gosetsid-handshake")

	// fail reports a pre-exec error to the waiting parent, which relays it
	// to the invoker's stderr. Falls back to stderr directly if the pipe is
	// gone (parent died or marker set by hand).
	fail := func(format string, a ...interface{}) int {
		msg := fmt.Sprintf(format, a...)
		reported := false
		if ready != nil {
			if _, err := fmt.Fprintln(ready, msg); err == nil {
				reported = true
			}
			_ = ready.Close()
		}
		if !reported {
			fmt.Fprintln(os.Stderr, msg)
		}
		return 1
	}

	if len(args) < 2 {
		return fail("child phase started with %d arguments, need session file and command", len(args))
	}
	sessionFile, command, commandArgs := args[0], args[1], args[2:]

	sid, err := currentSessionID()
	if err != nil {
		return fail("getsid: %v", err)
	}

	// The session file is written, synced and closed before the image
	// replacement is attempted, so external readers never observe the
	// target command running without a usable record.
	if err := session.Write(sessionFile, sid); err != nil {
		return fail("%v", err)
	}

	path, err := exec.LookPath(command)
	if errors.Is(err, exec.ErrDot) {
		err = nil
	}
	if err != nil {
		return fail("exec %s: %v", command, err)
	}

	// Handshake complete: close our pipe end so the parent exits 0 and the
	// fd does not leak into the target command.
	if ready != nil {
		_ = ready.Close()
	}

	argv := append([]string{command}, commandArgs...)
	code, err := execImage(path, argv, childEnviron())
	if err != nil {
		// Late exec failure: the parent already reported success, so this
		// diagnostic goes to the inherited stderr.
		fmt.Fprintf(os.Stderr, "exec %s: %v\n", command, err)
		return 1
	}
	return code
}

// childEnviron returns the environment for the target command with the child
// marker removed. The marker must not outlive the child phase: a descendant
// that runs gosetsid itself would otherwise enter the child phase directly,
// skipping duplication, and record the outer session id instead of creating
// a session of its own.
func childEnviron() []string {
	env := os.Environ()
	out := make([]string, 0, len(env))
	for _, kv := range env {
		if strings.HasPrefix(kv, childEnv+"=") {
			continue
		}
		out = append(out, kv)
	}
	return out
}
