//go:build linux

package pingprobe

import (
	"strconv"
	"time"
)

// pingArgs builds the iputils invocation: -W takes the reply timeout
// in whole seconds.
func pingArgs(host string, timeout time.Duration) []string {
	secs := int(timeout / time.Second)
	if secs < 1 {
		secs = 1
	}
	return []string{"-c", "1", "-W", strconv.Itoa(secs), host}
}
