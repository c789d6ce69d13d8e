package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathStyle_Clean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style pathStyle
		in    string
		want  string
	}{
		{"posix root", posixStyle, "/", "/"},
		{"posix trailing sep", posixStyle, "/a/b/", "/a/b"},
		{"posix duplicate seps", posixStyle, "//a///b", "/a/b"},
		{"posix dot segments", posixStyle, "/a/./b/../c", "/a/c"},
		{"posix dotdot above root", posixStyle, "/../../a", "/a"},
		{"drive root", driveStyle, `C:\`, `C:\`},
		{"drive bare letter", driveStyle, "c:", `C:\`},
		{"drive forward slashes", driveStyle, "d:/Games/./Tinsel/", `D:\Games\Tinsel`},
		{"drive dotdot above root", driveStyle, `C:\..\Windows`, `C:\Windows`},
		{"drive rooted without letter", driveStyle, `\temp`, `\temp`},
		{"mount style backslash", newPathStyle(`\`, false), `E:\Data\\saves`, `E:\Data\saves`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.style.clean(tt.in))
		})
	}
}

func TestPathStyle_IsAbs(t *testing.T) {
	t.Parallel()

	assert.True(t, posixStyle.isAbs("/a"))
	assert.False(t, posixStyle.isAbs("a/b"))
	assert.False(t, posixStyle.isAbs(""))
	assert.False(t, posixStyle.isAbs("C:/a"), "drive prefixes are not special on posix")

	assert.True(t, driveStyle.isAbs(`C:\a`))
	assert.True(t, driveStyle.isAbs("c:/a"))
	assert.True(t, driveStyle.isAbs("/a"))
	assert.False(t, driveStyle.isAbs(`a\b`))
	assert.False(t, driveStyle.isAbs("1:/a"))
}

func TestPathStyle_DirAndBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		style    pathStyle
		path     string
		wantDir  string
		wantBase string
	}{
		{"posix root", posixStyle, "/", "/", "/"},
		{"posix top level", posixStyle, "/home", "/", "home"},
		{"posix nested", posixStyle, "/home/user/file.txt", "/home/user", "file.txt"},
		{"drive root", driveStyle, `C:\`, `C:\`, "C:"},
		{"drive top level", driveStyle, `C:\Games`, `C:\`, "Games"},
		{"drive nested", driveStyle, `C:\Games\dw.scn`, `C:\Games`, "dw.scn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantDir, tt.style.dir(tt.path))
			assert.Equal(t, tt.wantBase, tt.style.base(tt.path))
		})
	}
}

func TestPathStyle_Join(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/a", posixStyle.join("/", "a"))
	assert.Equal(t, "/a/b", posixStyle.join("/a", "b"))
	assert.Equal(t, `C:\a`, driveStyle.join(`C:\`, "a"))
	assert.Equal(t, `C:\a\b`, driveStyle.join(`C:\a`, "b"))
}

func TestPathStyle_IsRoot(t *testing.T) {
	t.Parallel()

	assert.True(t, posixStyle.isRoot("/"))
	assert.False(t, posixStyle.isRoot("/a"))
	assert.True(t, driveStyle.isRoot(`C:\`))
	assert.True(t, driveStyle.isRoot(`\`))
	assert.False(t, driveStyle.isRoot(`C:\a`))
}

func TestPathStyle_ValidName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", ".", "..", "a/b", "a\x00b"} {
		assert.False(t, posixStyle.validName(name), "posix %q", name)
		assert.False(t, driveStyle.validName(name), "drive %q", name)
	}
	assert.True(t, posixStyle.validName(`a\b`), "backslash is an ordinary character on posix")
	assert.False(t, driveStyle.validName(`a\b`))
	assert.False(t, driveStyle.validName("c:"))
	assert.True(t, posixStyle.validName(".hidden"))
	assert.True(t, driveStyle.validName("save 01.dat"))
}

func TestPathStyle_Equal(t *testing.T) {
	t.Parallel()

	assert.False(t, posixStyle.equal("/A", "/a"))
	assert.True(t, driveStyle.equal(`C:\GAMES`, `c:\games`))
}

func TestPathStyle_Within(t *testing.T) {
	t.Parallel()

	assert.True(t, posixStyle.within("/media/a", "/media/a"))
	assert.True(t, posixStyle.within("/media/a/x", "/media/a"))
	assert.False(t, posixStyle.within("/media/ab", "/media/a"))
	assert.True(t, posixStyle.within("/x", "/"))
	assert.True(t, driveStyle.within(`c:\games\x`, `C:\Games`))
	assert.True(t, driveStyle.within(`C:\x`, `C:\`))
}
