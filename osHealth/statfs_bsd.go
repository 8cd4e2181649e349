//go:build darwin || freebsd

package osHealth

import (
	"golang.org/x/sys/unix"
)

func statfsCounters(st *unix.Statfs_t) DiskCounters {
	return blockCounters(uint64(st.Blocks), uint64(st.Bfree), uint64(st.Bavail), uint64(st.Bsize))
}
