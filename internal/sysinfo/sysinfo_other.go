//go:build !unix

package sysinfo

func sample() Usage {
	return Usage{}
}
