//go:build !unix

package rlimit

import "errors"

// Target mirrors the unix build's constant for callers that log it
// regardless of platform.
const Target uint64 = 1 << 20

// Raise changes nothing on non-unix platforms, where RLIMIT_NOFILE has no
// equivalent, and always returns an error.
func Raise() error {
	return errors.New("rlimit: not supported on this platform")
}
