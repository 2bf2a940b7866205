//go:build !unix

package experiment

import "time"

// processUserTime is unavailable on this platform; CPU time is reported as 0.
func processUserTime() time.Duration { return 0 }
