//go:build !windows

package proc

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// ParseSignal resolves a signal name like "TERM", "SIGKILL" or "hup" to a
// signal number.
func ParseSignal(name string) (unix.Signal, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if s == "" {
		return 0, fmt.Errorf("empty signal name")
	}
	if !strings.HasPrefix(s, "SIG") {
		s = "SIG" + s
	}
	sig := unix.SignalNum(s)
	if sig == 0 {
		return 0, fmt.Errorf("unknown signal %q", name)
	}
	return sig, nil
}

// SignalSession delivers sig to the whole process group of the session
// leader. The detached child was made both session and process-group leader,
// so its pid, pgid and sid are all the same value and kill(-sid) reaches
// every process it spawned that stayed in the group.
func (i *Inspector) SignalSession(sid int, sig unix.Signal) error {
	if sid <= 0 {
		return fmt.Errorf("invalid session id %d", sid)
	}
	if err := unix.Kill(-sid, sig); err != nil {
		return fmt.Errorf("kill session %d: %w", sid, err)
	}
	i.logger.WithFields(map[string]interface{}{
		"sid":    sid,
		"signal": unix.SignalName(sig),
	}).Debug("signal delivered to session process group")
	return nil
}
