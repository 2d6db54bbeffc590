//go:build darwin

package pingprobe

import (
	"strconv"
	"time"
)

// pingArgs builds the BSD invocation: -W takes the reply timeout in
// milliseconds.
func pingArgs(host string, timeout time.Duration) []string {
	ms := int(timeout / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return []string{"-c", "1", "-W", strconv.Itoa(ms), host}
}
