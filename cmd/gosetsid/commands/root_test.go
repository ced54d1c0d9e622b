package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootArgValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no args", args: nil, wantErr: true},
		{name: "session file only", args: []string{"/tmp/sess.txt"}, wantErr: true},
		{name: "session file and command", args: []string{"/tmp/sess.txt", "true"}},
		{name: "command with args", args: []string{"/tmp/sess.txt", "echo", "hello", "world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rootCmd.Args(rootCmd, tt.args)
			if tt.wantErr {
				assert.Error(t, err, "usage error expected before any duplication happens")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"status": false, "kill": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootFlagsNotInterspersed(t *testing.T) {
	// Flags after the target command must be forwarded to it, not eaten by
	// cobra. With interspersed parsing disabled, everything after the first
	// positional arg stays positional.
	rootCmd.Flags().Parse([]string{"/tmp/s", "sleep", "--help"})
	args := rootCmd.Flags().Args()
	assert.Equal(t, []string{"/tmp/s", "sleep", "--help"}, args)
}
