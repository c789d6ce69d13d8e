package filesystem

import (
	"strings"
)

// pathStyle captures the native path conventions of a platform variant.
// All methods operate on strings only and never touch the backend.
type pathStyle struct {
	sep             byte // native separator
	caseInsensitive bool // names compare with strings.EqualFold
	drives          bool // absolute paths carry a "X:" volume prefix
}

var (
	posixStyle = pathStyle{sep: '/'}
	driveStyle = pathStyle{sep: '\\', caseInsensitive: true, drives: true}
)

func newPathStyle(sep string, caseInsensitive bool) pathStyle {
	if sep == `\` {
		return pathStyle{sep: '\\', caseInsensitive: caseInsensitive, drives: true}
	}
	return pathStyle{sep: '/', caseInsensitive: caseInsensitive}
}

func (s pathStyle) separator() string {
	return string(s.sep)
}

// isSep accepts '/' as an alternate separator on backslash platforms
func (s pathStyle) isSep(c byte) bool {
	return c == s.sep || (s.sep == '\\' && c == '/')
}

// volumePrefix returns the "X:" prefix of p, upper-cased, or "".
func (s pathStyle) volumePrefix(p string) string {
	if !s.drives || len(p) < 2 || p[1] != ':' {
		return ""
	}
	c := p[0]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return strings.ToUpper(p[:2])
	}
	return ""
}

func (s pathStyle) isAbs(p string) bool {
	if v := s.volumePrefix(p); v != "" {
		// "C:" alone names the volume root; "C:foo" is drive-relative which we
		// do not support and treat as absolute from the volume root
		return true
	}
	return len(p) > 0 && s.isSep(p[0])
}

// clean returns the canonical form of an absolute path: native separators,
// no empty, "." or ".." segments, no trailing separator except on a root.
// ".." never climbs above the root.
func (s pathStyle) clean(p string) string {
	prefix := s.volumePrefix(p)
	rest := p[len(prefix):]

	segs := make([]string, 0, strings.Count(rest, "/")+strings.Count(rest, `\`)+1)
	for _, seg := range strings.FieldsFunc(rest, func(r rune) bool { return r < 0x80 && s.isSep(byte(r)) }) {
		switch seg {
		case ".":
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, seg)
		}
	}
	return prefix + s.separator() + strings.Join(segs, s.separator())
}

// rootLen is the length of the root portion of a clean path ("/" or "C:\")
func (s pathStyle) rootLen(p string) int {
	return len(s.volumePrefix(p)) + 1
}

func (s pathStyle) isRoot(p string) bool {
	return len(p) == s.rootLen(p) && len(p) > 0 && s.isSep(p[len(p)-1])
}

// join appends a single name to a clean directory path
func (s pathStyle) join(dir, name string) string {
	if len(dir) > 0 && s.isSep(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + s.separator() + name
}

// dir returns the parent of a clean path; a root is its own parent.
func (s pathStyle) dir(p string) string {
	if s.isRoot(p) {
		return p
	}
	i := strings.LastIndexByte(p, s.sep)
	if i < 0 {
		return p
	}
	if i < s.rootLen(p) {
		return p[:s.rootLen(p)]
	}
	return p[:i]
}

// base returns the last component of a clean path. For a drive root it
// returns the drive ("C:"), for the POSIX root the separator itself.
func (s pathStyle) base(p string) string {
	if s.isRoot(p) {
		if v := s.volumePrefix(p); v != "" {
			return v
		}
		return s.separator()
	}
	return p[strings.LastIndexByte(p, s.sep)+1:]
}

// validName reports whether name is a single, non-navigating path component
func (s pathStyle) validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.IndexByte(name, 0) >= 0 || strings.IndexByte(name, '/') >= 0 {
		return false
	}
	if s.sep == '\\' && (strings.IndexByte(name, '\\') >= 0 || strings.IndexByte(name, ':') >= 0) {
		return false
	}
	return true
}

func (s pathStyle) equal(a, b string) bool {
	if s.caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// within reports whether p is root or lies below it
func (s pathStyle) within(p, root string) bool {
	if root == "" {
		return false
	}
	if s.equal(p, root) {
		return true
	}
	prefix := root
	if !s.isSep(root[len(root)-1]) {
		prefix += s.separator()
	}
	if len(p) <= len(prefix) {
		return false
	}
	return s.equal(p[:len(prefix)], prefix)
}
