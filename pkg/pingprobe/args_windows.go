//go:build windows

package pingprobe

import (
	"strconv"
	"time"
)

// pingArgs builds the Windows invocation: -w takes the reply timeout
// in milliseconds and -n the echo count.
func pingArgs(host string, timeout time.Duration) []string {
	ms := int(timeout / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return []string{"-n", "1", "-w", strconv.Itoa(ms), host}
}
