//go:build darwin

package xattr

import "golang.org/x/sys/unix"

func isAbsent(err error) bool {
	switch err {
	case unix.ENOATTR, unix.ENOENT, unix.EACCES, unix.EPERM, unix.ENOTSUP:
		return true
	}
	return false
}
