package pkgmap

import "net/url"

// Mapping is the parsed content of a package map file.
//
// Packages maps each package name to the base location of its sources.
// Every location is a directory: its path always ends in '/'.
//
// Default names the default package, or is empty when the file carries
// no default-package directive. The directive is kept out of the
// Packages map so that location values are always real URIs.
type Mapping struct {
	Packages map[string]*url.URL
	Default  string
}

// NewMapping returns an empty mapping ready to accumulate entries.
func NewMapping() *Mapping {
	return &Mapping{Packages: make(map[string]*url.URL)}
}

// Lookup returns the location for a package name, or nil if absent.
func (m *Mapping) Lookup(name string) *url.URL {
	return m.Packages[name]
}

// Len reports the number of package entries, excluding the
// default-package directive.
func (m *Mapping) Len() int {
	return len(m.Packages)
}

// HasDefault reports whether a default package is designated.
func (m *Mapping) HasDefault() bool {
	return m.Default != ""
}
