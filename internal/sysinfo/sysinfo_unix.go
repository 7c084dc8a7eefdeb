//go:build unix

package sysinfo

import (
	"time"

	"golang.org/x/sys/unix"
)

func sample() Usage {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Usage{}
	}
	return Usage{
		UserCPU:   timevalDuration(ru.Utime),
		SystemCPU: timevalDuration(ru.Stime),
		// Linux reports ru_maxrss in KiB; Darwin reports bytes. Both
		// deployment targets here are Linux, so keep the KiB reading.
		MaxRSSKiB: int64(ru.Maxrss),
	}
}

func timevalDuration(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}
