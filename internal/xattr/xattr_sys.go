//go:build darwin || linux

package xattr

import (
	"os"

	"golang.org/x/sys/unix"
)

type sysReader struct{}

// SystemReader returns the Reader backed by the host getxattr syscall.
func SystemReader() Reader {
	return sysReader{}
}

func (sysReader) Get(path, name string, dest []byte) (int, error) {
	for attempt := 0; ; attempt++ {
		n, err := unix.Getxattr(path, name, dest)
		switch {
		case err == nil:
			return n, nil
		case err == unix.EINTR && attempt == 0:
			// Retried once; a second interruption is treated as a miss below.
		case err == unix.EINTR:
			return 0, ErrAttrAbsent
		case err == unix.ERANGE:
			return 0, ErrValueTooLarge
		case isAbsent(err):
			return 0, ErrAttrAbsent
		default:
			return 0, &os.PathError{Op: "getxattr", Path: path, Err: err}
		}
	}
}
