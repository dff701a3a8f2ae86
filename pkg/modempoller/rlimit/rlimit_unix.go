//go:build unix

// Package rlimit raises the open-file descriptor limit, the idiomatic Go
// equivalent of initialize()'s setrlimit(RLIMIT_NOFILE, ...) call in
// modempoller-nmsprime.c.
package rlimit

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Target is 2^20, matching spec.md §4.7/§6 and the source's 1024*1024.
const Target uint64 = 1 << 20

// Raise sets both the soft and hard open-file limit to Target. Failure is
// never fatal — the source only warns and continues, since most cycles
// stay well under even the default limit.
func Raise() error {
	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &lim); err != nil {
		return fmt.Errorf("rlimit: getrlimit: %w", err)
	}

	lim.Cur = Target
	lim.Max = Target
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &lim); err != nil {
		return fmt.Errorf("rlimit: setrlimit: %w", err)
	}
	return nil
}
