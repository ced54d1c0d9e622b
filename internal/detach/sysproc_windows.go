//go:build windows

package detach

import (
	"os"
	"os/exec"
	"syscall"
)

// sysProcAttrForDetach detaches the duplicate from the parent's console on
// Windows, which has no POSIX sessions. CREATE_NEW_PROCESS_GROUP is the
// closest analogue to starting a new session.
func sysProcAttrForDetach() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}

// attachHandshake is a no-op on Windows: os/exec has no ExtraFiles support
// there. The parent sees immediate EOF on the pipe and exits 0 without
// waiting for the child's pre-exec phase, which is plain fork semantics.
func attachHandshake(cmd *exec.Cmd, pw *os.File) {}
