//go:build !linux && !darwin && !freebsd

package osHealth

import "errors"

var errNoStatfs = errors.New("statfs not available on this platform")

func statfsDisk(path string) (DiskCounters, error) {
	return DiskCounters{}, errNoStatfs
}

func hostPageSize() (uint64, error) {
	return 0, errNoStatfs
}
