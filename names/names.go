// Package names holds the default package-name validity rule set.
//
// A valid name is a non-empty string of URI path-segment characters,
// excluding '%', ':' and '@', with at least one character that is not
// a dot. This keeps names usable verbatim as a single path segment of
// a package: URI.
package names

// validNameBytes marks the bytes allowed in a package name: ASCII
// letters and digits plus  ! $ & ' ( ) * + , - . ; = _ ~
var validNameBytes = [256]bool{}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		validNameBytes[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		validNameBytes[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		validNameBytes[c] = true
	}
	for _, c := range []byte("!$&'()*+,-.;=_~") {
		validNameBytes[c] = true
	}
}

// IsValid reports whether name is a valid package name.
func IsValid(name string) bool {
	if name == "" {
		return false
	}
	nonDot := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !validNameBytes[c] {
			return false
		}
		if c != '.' {
			nonDot = true
		}
	}
	return nonDot
}
