package pkgmap

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestParseBasic(t *testing.T) {
	require := require.New(t)
	base := mustURL(t, "file:///home/user/project/.packages")
	src := []byte("# header\nfoo:../foo/lib\nbar:lib/\nbaz:file:///opt/baz/lib/\n")
	m, err := Parse(src, base, ParseOptions{})
	require.NoError(err)
	require.Equal(3, m.Len())
	require.Equal("file:///home/user/foo/lib/", m.Lookup("foo").String())
	require.Equal("file:///home/user/project/lib/", m.Lookup("bar").String())
	require.Equal("file:///opt/baz/lib/", m.Lookup("baz").String())
	require.False(m.HasDefault())
}

func TestParseLocationsEndInSlash(t *testing.T) {
	base := mustURL(t, "file:///p/.packages")
	src := []byte("a:lib\nb:lib/\nc:http://host:9/x\n")
	m, err := Parse(src, base, ParseOptions{})
	require.NoError(t, err)
	for name, loc := range m.Packages {
		require.True(t, isDirectory(loc), "location of %q is %q", name, loc)
	}
}

func TestParseValueKeepsEmbeddedColons(t *testing.T) {
	base := mustURL(t, "file:///p/.packages")
	m, err := Parse([]byte("name:http://x:8080/"), base, ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, "http://x:8080/", m.Lookup("name").String())
}

func TestParseCommentNeverAnEntry(t *testing.T) {
	base := mustURL(t, "file:///p/.packages")
	m, err := Parse([]byte("# anything:weird\n"), base, ParseOptions{})
	require.NoError(t, err)
	require.Zero(t, m.Len())
}

func TestParseLineTerminators(t *testing.T) {
	require := require.New(t)
	base := mustURL(t, "file:///p/.packages")
	// '\r' and '\n' each end a line on their own; the final line needs
	// no terminator at all.
	m, err := Parse([]byte("a:x\rb:y\r\nc:z"), base, ParseOptions{})
	require.NoError(err)
	require.Equal(3, m.Len())
	require.Equal("file:///p/x/", m.Lookup("a").String())
	require.Equal("file:///p/y/", m.Lookup("b").String())
	require.Equal("file:///p/z/", m.Lookup("c").String())
}

func TestParseBlankLines(t *testing.T) {
	base := mustURL(t, "file:///p/.packages")
	m, err := Parse([]byte("\n\r\n\na:x\n\n"), base, ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
}

func TestParseNilBaseLeavesLocations(t *testing.T) {
	m, err := Parse([]byte("a:lib/src\n"), nil, ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, "lib/src/", m.Lookup("a").String())
}

func TestParseDefaultDirective(t *testing.T) {
	require := require.New(t)
	base := mustURL(t, "file:///p/.packages")

	m, err := Parse([]byte(":def\n"), base, ParseOptions{AllowDefaultPackage: true})
	require.NoError(err)
	require.True(m.HasDefault())
	require.Equal("def", m.Default)
	require.Zero(m.Len())

	_, err = Parse([]byte(":def\n"), base, ParseOptions{})
	requireKind(t, err, ErrDefaultDisallowed)
}

func TestParseErrors(t *testing.T) {
	base := mustURL(t, "file:///p/.packages")
	opts := ParseOptions{AllowDefaultPackage: true}
	cases := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{"no separator", "a:x\nnonsense\n", ErrMissingSeparator},
		{"bad name", "a b:x\n", ErrInvalidPackageName},
		{"dots-only name", "..:x\n", ErrInvalidPackageName},
		{"bad default name", ":a/b\n", ErrInvalidPackageName},
		{"duplicate", "a:loc1\na:loc2\n", ErrDuplicateEntry},
		{"duplicate default", ":a\n:b\n", ErrDuplicateEntry},
		{"bad location", "a:file://%zz\n", ErrInvalidLocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src), base, opts)
			requireKind(t, err, tc.kind)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	require := require.New(t)
	base := mustURL(t, "file:///p/.packages")
	_, err := Parse([]byte("ok:here\nbroken\n"), base, ParseOptions{})
	perr := requireKind(t, err, ErrMissingSeparator)
	require.Equal(2, perr.Line)
	require.Equal(len("ok:here\n"), perr.Offset)
	require.Contains(perr.Error(), "line 2")
}

func TestParseCustomNamePredicate(t *testing.T) {
	base := mustURL(t, "file:///p/.packages")
	opts := ParseOptions{IsValidName: func(s string) bool { return s == "only" }}
	m, err := Parse([]byte("only:x\n"), base, opts)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	_, err = Parse([]byte("other:x\n"), base, opts)
	requireKind(t, err, ErrInvalidPackageName)
}

// requireKind asserts err is a *Error of the given kind and returns it.
func requireKind(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()
	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, kind, perr.Kind)
	return perr
}
