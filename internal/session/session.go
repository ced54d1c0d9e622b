// Package session reads and writes the session record file.
//
// The record is one line: the decimal session id of the detached process,
// newline-terminated. It is written exactly once per detach, by the detached
// child, before the child replaces its image with the target command. Readers
// (the status and kill commands, or any external process) only ever see a
// fully written file.
package session

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Write records sid to the file at path, creating it if absent and
// truncating any prior content. Open, write, sync and close are checked
// separately so a failure names the sub-step that produced it.
func Write(path string, sid int) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open session file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%d\n", sid); err != nil {
		_ = f.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync session file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	return nil
}

// Read parses the session id back out of the file at path.
func Read(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read session file: %w", err)
	}
	sid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse session file %s: %w", path, err)
	}
	if sid < 0 {
		return 0, fmt.Errorf("parse session file %s: negative session id %d", path, sid)
	}
	return sid, nil
}
