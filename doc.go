// Package pkgmap provides parsing and serialization for the package map
// format: a line-oriented text file mapping package names to base
// locations (URIs).
//
// This package exposes the Parse/Format pair as well as a streaming
// Writer. The implementation targets correctness per the format's
// grammar (first-colon separator, comment lines, default-package
// directive, directory normalization).
//
// # Grammar
//
// A file is a sequence of lines, each terminated by '\n', '\r', or end
// of input. Blank lines and lines starting with '#' are ignored. Every
// other line is split at its first ':' into a package name and a
// location:
//
//	foo:../foo/lib/
//	bar:file:///home/bar/lib/
//	# a comment
//	:foo
//
// The location is a URI reference, resolved against the caller's base
// location and normalized to end with '/'. A line starting with ':' is
// the default-package directive, naming the package that loose source
// files belong to; it is only recognized when enabled in the options.
//
// Package-name validity is an injectable predicate; the default rule
// set lives in the names subpackage. URI relativization, used when a
// base location is supplied to the writer, lives in the relurl
// subpackage and is usable on its own.
package pkgmap
