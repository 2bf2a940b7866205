//go:build unix

package experiment

import (
	"time"

	"golang.org/x/sys/unix"
)

// processUserTime returns the user CPU time consumed by this process so far.
func processUserTime() time.Duration {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}

	return time.Duration(ru.Utime.Nano())
}
