package pkgmap

import (
	"bytes"
)

// Format serializes m into a package map byte slice.
func Format(m *Mapping, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, opts).WriteMapping(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
