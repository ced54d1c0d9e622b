//go:build windows

package proc

import "fmt"

// Signal is a placeholder type on Windows, where sessions and process
// groups in the POSIX sense do not exist.
type Signal int

// ParseSignal always fails on Windows.
func ParseSignal(name string) (Signal, error) {
	return 0, fmt.Errorf("signals are not supported on windows")
}

// SignalSession always fails on Windows.
func (i *Inspector) SignalSession(sid int, sig Signal) error {
	return fmt.Errorf("signalling a session is not supported on windows")
}
