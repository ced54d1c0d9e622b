//go:build !windows

package detach

import (
	"golang.org/x/sys/unix"
)

// currentSessionID returns the session id of the calling process.
func currentSessionID() (int, error) {
	return unix.Getsid(0)
}

// execImage replaces the current process image with the program at path,
// keeping pid, session and process group. On success it does not return.
func execImage(path string, argv []string, env []string) (int, error) {
	if err := unix.Exec(path, argv, env); err != nil {
		return 1, err
	}
	// Unreachable: Exec either replaced the image or returned an error.
	return 0, nil
}
