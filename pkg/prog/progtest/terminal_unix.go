//go:build !windows

package progtest

import (
	"strings"

	"github.com/creack/pty"
)

func terminalStdout() (capture, error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return capture{}, err
	}
	return capture{ptmx, tty, func(s string) string {
		return strings.ReplaceAll(s, "\r\n", "\n")
	}}, nil
}
