//go:build windows

package detach

import (
	"os"
	"os/exec"
)

// currentSessionID returns this process's pid. Windows has no POSIX session
// id; the pid of the detached process stands in for it in the session file,
// which keeps the file format and the status/kill lookups consistent.
func currentSessionID() (int, error) {
	return os.Getpid(), nil
}

// execImage emulates process-image replacement, which Windows does not
// support: it runs the target as a further child with inherited stdio, waits
// for it and returns its exit status so the caller exits with the same code.
// Known deviation: the target's pid differs from the pid in the session file.
func execImage(path string, argv []string, env []string) (int, error) {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 1, err
	}
	return 0, nil
}
