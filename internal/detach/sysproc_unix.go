//go:build !windows

package detach

import (
	"os"
	"os/exec"
	"syscall"
)

// sysProcAttrForDetach returns SysProcAttr that places the duplicate in a new
// session. Setsid runs in the child between fork and exec, while the process
// is freshly created and therefore not yet a process-group leader — the one
// state in which setsid cannot fail with EPERM.
func sysProcAttrForDetach() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}

// attachHandshake hands the write end of the handshake pipe to the duplicate
// as fd 3 (the first descriptor after stdio).
func attachHandshake(cmd *exec.Cmd, pw *os.File) {
	cmd.ExtraFiles = []*os.File{pw}
}
