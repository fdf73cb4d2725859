package xattr

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ItemIDAttr is the extended attribute DriveFS stamps on every synced entry.
const ItemIDAttr = "com.google.drivefs.item-id#S"

// DefaultBufferSize covers Drive file IDs (33-44 bytes) with headroom, so the
// common case needs a single read.
const DefaultBufferSize = 256

var (
	// ErrAttrAbsent reports that the entry carries no readable attribute value.
	// Readers also map permission and vanished-file conditions to this error;
	// probing treats all of them as an ordinary miss.
	ErrAttrAbsent = errors.New("xattr: attribute absent")
	// ErrValueTooLarge reports that the destination buffer cannot hold the
	// attribute value; callers re-read with a sized buffer.
	ErrValueTooLarge = errors.New("xattr: value larger than buffer")
)

// Reader abstracts the host getxattr facility so the probe can run against
// the real filesystem or an in-memory fixture.
type Reader interface {
	// Get reads the named attribute of path into dest and returns the value
	// length. An empty dest queries the value size without copying. Absent,
	// unreadable, and vanished attributes yield ErrAttrAbsent; a too-small
	// dest yields ErrValueTooLarge.
	Get(path, name string, dest []byte) (int, error)
}

// Probe reads the DriveFS item-id attribute from filesystem entries. The
// fixed read buffer is owned by the probe value and lives for one resolve
// call; Probe is not safe for concurrent use.
type Probe struct {
	reader Reader
	attr   string
	buf    []byte
}

// NewProbe builds a probe over reader with the given fixed buffer size.
// A non-positive size falls back to DefaultBufferSize.
func NewProbe(reader Reader, bufferSize int) *Probe {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Probe{
		reader: reader,
		attr:   ItemIDAttr,
		buf:    make([]byte, bufferSize),
	}
}

// FileID reads the item-id attribute from path. The boolean reports whether a
// decodable value was present; absent, unreadable, and undecodable attributes
// are a miss, not an error. Only unexpected system failures are returned.
func (p *Probe) FileID(path string) (string, bool, error) {
	n, err := p.reader.Get(path, p.attr, p.buf)
	if err == nil {
		return decodeValue(p.buf[:n])
	}
	if errors.Is(err, ErrAttrAbsent) {
		return "", false, nil
	}
	if errors.Is(err, ErrValueTooLarge) {
		return p.fileIDSized(path)
	}
	return "", false, err
}

// fileIDSized handles values that overflow the fixed buffer: query the size,
// then read with an exact-size buffer so the value is never truncated.
func (p *Probe) fileIDSized(path string) (string, bool, error) {
	size, err := p.reader.Get(path, p.attr, nil)
	if err != nil {
		if errors.Is(err, ErrAttrAbsent) {
			return "", false, nil
		}
		return "", false, err
	}
	if size <= 0 {
		return "", false, nil
	}
	dest := make([]byte, size)
	n, err := p.reader.Get(path, p.attr, dest)
	if err != nil {
		// The value shrank or vanished between the size query and the read;
		// treat either as a miss for this entry.
		if errors.Is(err, ErrAttrAbsent) || errors.Is(err, ErrValueTooLarge) {
			return "", false, nil
		}
		return "", false, err
	}
	return decodeValue(dest[:n])
}

func decodeValue(raw []byte) (string, bool, error) {
	value := strings.TrimRight(string(raw), "\x00")
	value = strings.TrimSpace(value)
	if value == "" || !utf8.ValidString(value) {
		return "", false, nil
	}
	return value, true, nil
}
