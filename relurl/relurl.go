// Package relurl computes relative URL references.
//
// Relativize is the inverse of URL resolution for directory locations:
// given an absolute base, it produces the reference that resolves back
// to the target. It has no dependency on the package map codec and can
// be used on its own.
package relurl

import (
	"net/url"
	"path"
	"strings"
)

// Relativize returns a reference to target relative to base. Base must
// be absolute. Query and fragment on target are dropped: the function
// is meant for directory locations, which carry neither.
//
// When no useful relative form exists (target already relative, scheme
// or authority mismatch, opaque URI, or no shared path prefix) the
// target is returned unchanged apart from the query/fragment strip.
func Relativize(target, base *url.URL) *url.URL {
	if target.RawQuery != "" || target.Fragment != "" {
		t := *target
		t.RawQuery = ""
		t.Fragment = ""
		t.RawFragment = ""
		target = &t
	}
	if !target.IsAbs() {
		return target
	}
	if target.Scheme != base.Scheme {
		return target
	}
	if target.Opaque != "" || base.Opaque != "" {
		return target
	}
	if !sameAuthority(target, base) {
		return target
	}

	targetSegs := segments(normalize(target.Path))
	baseSegs := segments(normalize(base.Path))
	// The base's last segment names the document the base stands for,
	// not a directory component.
	if len(baseSegs) > 0 {
		baseSegs = baseSegs[:len(baseSegs)-1]
	}
	if n := len(targetSegs); n > 0 && targetSegs[n-1] == "" {
		targetSegs = targetSegs[:n-1]
	}

	common := 0
	for common < len(targetSegs) && common < len(baseSegs) && targetSegs[common] == baseSegs[common] {
		common++
	}
	switch {
	case common == len(baseSegs):
		if common == len(targetSegs) {
			return &url.URL{Path: "./"}
		}
		return &url.URL{Path: strings.Join(targetSegs[common:], "/")}
	case common > 0:
		up := strings.Repeat("../", len(baseSegs)-common)
		return &url.URL{Path: up + strings.Join(targetSegs[common:], "/")}
	default:
		return target
	}
}

// sameAuthority reports whether the two URLs share user-info, host
// (case-insensitively) and port, treating a URL without an authority
// as matching nothing but another URL without one.
func sameAuthority(a, b *url.URL) bool {
	aHas := a.Host != "" || a.User != nil
	bHas := b.Host != "" || b.User != nil
	if aHas != bHas {
		return false
	}
	if !aHas {
		return true
	}
	if (a.User == nil) != (b.User == nil) {
		return false
	}
	if a.User != nil && a.User.String() != b.User.String() {
		return false
	}
	return strings.EqualFold(a.Hostname(), b.Hostname()) && a.Port() == b.Port()
}

// normalize collapses "." and ".." segments, keeping a trailing slash.
func normalize(p string) string {
	if p == "" {
		return p
	}
	c := path.Clean(p)
	if c == "." {
		return ""
	}
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(c, "/") {
		c += "/"
	}
	return c
}

// segments splits an absolute path into its components. The leading
// slash is not a segment; "/" has none.
func segments(p string) []string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
