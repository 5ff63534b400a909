package pkgmap

import "fmt"

// ErrorKind classifies parse/write errors.
type ErrorKind int

const (
	ErrMissingSeparator ErrorKind = iota + 1
	ErrInvalidPackageName
	ErrInvalidLocation
	ErrDuplicateEntry
	ErrDefaultDisallowed
	ErrBaseNotAbsolute
	ErrReservedScheme
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrMissingSeparator:
		return "missing separator"
	case ErrInvalidPackageName:
		return "invalid package name"
	case ErrInvalidLocation:
		return "invalid location"
	case ErrDuplicateEntry:
		return "duplicate entry"
	case ErrDefaultDisallowed:
		return "default package not allowed"
	case ErrBaseNotAbsolute:
		return "base must be absolute"
	case ErrReservedScheme:
		return "reserved scheme"
	default:
		return "unknown error"
	}
}

// Error carries line, offset and classification for better diagnostics.
// Line is 1-based and Offset is the byte offset of the offending line;
// both are zero for errors raised while writing.
type Error struct {
	Kind   ErrorKind
	Line   int
	Offset int
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("pkgmap: %v on line %d (offset %d): %s", e.Kind, e.Line, e.Offset, e.Detail)
	}
	return fmt.Sprintf("pkgmap: %v: %s", e.Kind, e.Detail)
}
