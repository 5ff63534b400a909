package pkgmap

import (
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/pkgmap/pkgmap/names"
	"github.com/pkgmap/pkgmap/relurl"
)

// ReservedScheme is the URI scheme reserved for package-relative
// references. Locations in a package map must not use it, since they
// are what such references resolve through.
const ReservedScheme = "package"

// WriteOptions configures serialization.
type WriteOptions struct {
	// Base, when non-nil, must be absolute; entry locations are written
	// relative to it.
	Base *url.URL

	// Comment is written as the leading comment block, one "# " line
	// per input line. When empty a generated timestamp header is
	// written instead.
	Comment string

	// AllowDefaultPackage permits serializing a mapping that
	// designates a default package.
	AllowDefaultPackage bool

	// IsValidName overrides the package-name predicate. Nil selects
	// names.IsValid.
	IsValidName func(string) bool
}

// Writer serializes mappings to an io.Writer.
type Writer struct {
	w    io.Writer
	opts WriteOptions
}

// NewWriter creates a writer with the given options.
func NewWriter(w io.Writer, opts WriteOptions) *Writer {
	if opts.IsValidName == nil {
		opts.IsValidName = names.IsValid
	}
	return &Writer{w: w, opts: opts}
}

// WriteMapping writes m in package map format. Entries are emitted in
// sorted name order, after the comment block and the default-package
// directive. Each entry is validated before any of its bytes are
// written; on error, entries already written stay in the stream.
func (wr *Writer) WriteMapping(m *Mapping) error {
	if wr.opts.Base != nil && !wr.opts.Base.IsAbs() {
		return &Error{Kind: ErrBaseNotAbsolute, Detail: wr.opts.Base.String()}
	}
	if err := wr.writeComment(); err != nil {
		return err
	}
	if m.Default != "" {
		if !wr.opts.AllowDefaultPackage {
			return &Error{Kind: ErrDefaultDisallowed, Detail: "mapping designates a default package"}
		}
		if !wr.opts.IsValidName(m.Default) {
			return &Error{Kind: ErrInvalidPackageName, Detail: fmt.Sprintf("invalid default package name %q", m.Default)}
		}
		if _, err := fmt.Fprintf(wr.w, ":%s\n", m.Default); err != nil {
			return err
		}
	}
	sorted := make([]string, 0, len(m.Packages))
	for name := range m.Packages {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	for _, name := range sorted {
		if err := wr.writeEntry(name, m.Packages[name]); err != nil {
			return err
		}
	}
	return nil
}

func (wr *Writer) writeComment() error {
	comment := wr.opts.Comment
	if comment == "" {
		_, err := fmt.Fprintf(wr.w, "# Generated package map, %s\n", time.Now().Format(time.RFC1123))
		return err
	}
	lines := strings.Split(comment, "\n")
	// A trailing newline in the comment is not an extra empty line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for _, ln := range lines {
		if _, err := fmt.Fprintf(wr.w, "# %s\n", ln); err != nil {
			return err
		}
	}
	return nil
}

func (wr *Writer) writeEntry(name string, loc *url.URL) error {
	if !wr.opts.IsValidName(name) {
		return &Error{Kind: ErrInvalidPackageName, Detail: fmt.Sprintf("invalid package name %q", name)}
	}
	if loc.Scheme == ReservedScheme {
		return &Error{Kind: ErrReservedScheme, Detail: fmt.Sprintf("location of %q must not use the %s scheme", name, ReservedScheme)}
	}
	out := loc
	if wr.opts.Base != nil {
		out = relurl.Relativize(loc, wr.opts.Base)
	}
	line := name + ":" + out.String()
	if !isDirectory(out) {
		line += "/"
	}
	_, err := io.WriteString(wr.w, line+"\n")
	return err
}

// isDirectory reports whether the written form of u already ends in a
// path separator.
func isDirectory(u *url.URL) bool {
	if u.Opaque != "" {
		return strings.HasSuffix(u.Opaque, "/")
	}
	return strings.HasSuffix(u.Path, "/")
}
