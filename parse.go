package pkgmap

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkgmap/pkgmap/names"
)

// ParseOptions configures the parser behavior.
type ParseOptions struct {
	// AllowDefaultPackage enables the ":name" directive designating a
	// default package.
	AllowDefaultPackage bool

	// IsValidName overrides the package-name predicate. Nil selects
	// names.IsValid.
	IsValidName func(string) bool
}

// Parse reads a package map from src. Relative locations are resolved
// against base, which must be absolute when given; a nil base leaves
// locations as parsed. Returns a *Error on malformed input.
func Parse(src []byte, base *url.URL, opts ParseOptions) (*Mapping, error) {
	valid := opts.IsValidName
	if valid == nil {
		valid = names.IsValid
	}
	m := NewMapping()
	line := 1
	for start := 0; start < len(src); line++ {
		end := start
		for end < len(src) && src[end] != '\n' && src[end] != '\r' {
			end++
		}
		if err := parseLine(m, src[start:end], line, start, base, opts.AllowDefaultPackage, valid); err != nil {
			return nil, err
		}
		if end < len(src) {
			// '\n' and '\r' each terminate a line on their own, so a
			// "\r\n" pair yields one blank line in between.
			end++
		}
		start = end
	}
	return m, nil
}

func parseLine(m *Mapping, ln []byte, line, offset int, base *url.URL, allowDefault bool, valid func(string) bool) error {
	if len(ln) == 0 || ln[0] == '#' {
		return nil
	}
	sep := bytes.IndexByte(ln, ':')
	if sep < 0 {
		return &Error{Kind: ErrMissingSeparator, Line: line, Offset: offset, Detail: fmt.Sprintf("no separator on line %q", ln)}
	}
	name := string(ln[:sep])
	value := string(ln[sep+1:])
	if name == "" {
		return parseDefaultDirective(m, value, line, offset, allowDefault, valid)
	}
	if !valid(name) {
		return &Error{Kind: ErrInvalidPackageName, Line: line, Offset: offset, Detail: fmt.Sprintf("invalid package name %q", name)}
	}
	if _, dup := m.Packages[name]; dup {
		return &Error{Kind: ErrDuplicateEntry, Line: line, Offset: offset, Detail: fmt.Sprintf("package %q appears twice", name)}
	}
	ref, err := url.Parse(value)
	if err != nil {
		return &Error{Kind: ErrInvalidLocation, Line: line, Offset: offset, Detail: fmt.Sprintf("location %q: %v", value, err)}
	}
	loc := ref
	if base != nil {
		loc = base.ResolveReference(ref)
	}
	ensureDirectory(loc)
	m.Packages[name] = loc
	return nil
}

func parseDefaultDirective(m *Mapping, value string, line, offset int, allowDefault bool, valid func(string) bool) error {
	if !allowDefault {
		return &Error{Kind: ErrDefaultDisallowed, Line: line, Offset: offset, Detail: "default-package directive not allowed here"}
	}
	if !valid(value) {
		return &Error{Kind: ErrInvalidPackageName, Line: line, Offset: offset, Detail: fmt.Sprintf("invalid default package name %q", value)}
	}
	if m.Default != "" {
		return &Error{Kind: ErrDuplicateEntry, Line: line, Offset: offset, Detail: "default package designated twice"}
	}
	m.Default = value
	return nil
}

// ensureDirectory normalizes loc in place so its path denotes a
// directory.
func ensureDirectory(loc *url.URL) {
	if loc.Opaque != "" {
		if !strings.HasSuffix(loc.Opaque, "/") {
			loc.Opaque += "/"
		}
		return
	}
	if !strings.HasSuffix(loc.Path, "/") {
		loc.Path += "/"
		if loc.RawPath != "" {
			loc.RawPath += "/"
		}
	}
}
