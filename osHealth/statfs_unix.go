//go:build linux || darwin || freebsd

package osHealth

import (
	"golang.org/x/sys/unix"
)

// statfsDisk reads total, used and free bytes from one statfs call.
func statfsDisk(path string) (DiskCounters, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskCounters{}, err
	}
	return statfsCounters(&st), nil
}

// blockCounters scales block counts by the fragment size.
// Used counts every non-free block, free counts what unprivileged users can allocate.
func blockCounters(blocks, bfree, bavail, unit uint64) DiskCounters {
	return DiskCounters{
		Total: blocks * unit,
		Used:  (blocks - bfree) * unit,
		Free:  bavail * unit,
	}
}

func hostPageSize() (uint64, error) {
	return uint64(unix.Getpagesize()), nil
}
