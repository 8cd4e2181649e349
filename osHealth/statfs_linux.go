//go:build linux

package osHealth

import (
	"golang.org/x/sys/unix"
)

// statfsCounters uses f_frsize: block counts on Linux are in fragments,
// f_bsize is only the preferred I/O size.
func statfsCounters(st *unix.Statfs_t) DiskCounters {
	return blockCounters(uint64(st.Blocks), uint64(st.Bfree), uint64(st.Bavail), uint64(st.Frsize))
}
