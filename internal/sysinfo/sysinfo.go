// Package sysinfo samples process resource usage for instrumentation.
// Sampling never fails the operation being instrumented: on error the
// zero Usage is returned.
package sysinfo

import "time"

// Usage is a point-in-time snapshot of the process's resource use.
type Usage struct {
	UserCPU   time.Duration // time spent in user mode
	SystemCPU time.Duration // time spent in kernel mode
	MaxRSSKiB int64         // peak resident set size, KiB
}

// Sample returns the current resource usage of this process.
func Sample() Usage {
	return sample()
}
