// Package proc inspects and signals the process session recorded in a
// session file.
package proc

import (
	"errors"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"
)

// SessionInfo describes the current state of a detached session's leader
// process. When Alive is false the remaining fields are zero.
type SessionInfo struct {
	SID       int
	Alive     bool
	Name      string
	StartedAt time.Time
}

// Inspector looks up session leaders on the local system.
type Inspector struct {
	logger *logrus.Logger
}

// New creates a new process inspector
func New(logger *logrus.Logger) *Inspector {
	return &Inspector{logger: logger}
}

// Inspect reports on the session leader with the given session id. A session
// leader's pid equals its session id, so the lookup is by pid. A missing
// process is not an error: it means the session has exited.
func (i *Inspector) Inspect(sid int) (*SessionInfo, error) {
	info := &SessionInfo{SID: sid}

	p, err := process.NewProcess(int32(sid))
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			i.logger.WithField("sid", sid).Debug("session leader not running")
			return info, nil
		}
		return nil, err
	}

	// A zombie still holds its pid but is no longer a running session
	// leader; report it gone.
	if statuses, err := p.Status(); err == nil {
		for _, s := range statuses {
			if s == process.Zombie {
				i.logger.WithField("sid", sid).Debug("session leader is a zombie")
				return info, nil
			}
		}
	}

	info.Alive = true

	// Name and start time are best-effort: the process can exit between
	// calls, and some platforms restrict reading other users' processes.
	if name, err := p.Name(); err == nil {
		info.Name = name
	} else {
		i.logger.WithError(err).WithField("sid", sid).Debug("failed to read process name")
	}
	if ms, err := p.CreateTime(); err == nil {
		info.StartedAt = time.UnixMilli(ms)
	} else {
		i.logger.WithError(err).WithField("sid", sid).Debug("failed to read process start time")
	}

	return info, nil
}
