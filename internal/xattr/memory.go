package xattr

// MapReader is an in-memory Reader for tests: path -> attribute -> value.
// It honors the size-query and buffer-overflow semantics of the syscall
// implementation.
type MapReader map[string]map[string]string

func (m MapReader) Get(path, name string, dest []byte) (int, error) {
	attrs, ok := m[path]
	if !ok {
		return 0, ErrAttrAbsent
	}
	value, ok := attrs[name]
	if !ok {
		return 0, ErrAttrAbsent
	}
	if len(dest) == 0 {
		return len(value), nil
	}
	if len(dest) < len(value) {
		return 0, ErrValueTooLarge
	}
	return copy(dest, value), nil
}

// SetItemID records the item-id attribute for path.
func (m MapReader) SetItemID(path, id string) {
	attrs, ok := m[path]
	if !ok {
		attrs = make(map[string]string, 1)
		m[path] = attrs
	}
	attrs[ItemIDAttr] = id
}
