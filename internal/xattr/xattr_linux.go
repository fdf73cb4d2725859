//go:build linux

package xattr

import "golang.org/x/sys/unix"

func isAbsent(err error) bool {
	switch err {
	// ENODATA is Linux's spelling of "no such attribute".
	case unix.ENODATA, unix.ENOENT, unix.EACCES, unix.EPERM, unix.EOPNOTSUPP:
		return true
	}
	return false
}
