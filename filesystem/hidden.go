package filesystem

import (
	"os"
	"strings"
)

// hiddenFunc decides whether a directory entry is hidden
type hiddenFunc func(info os.FileInfo) bool

func dotHidden(info os.FileInfo) bool {
	return strings.HasPrefix(info.Name(), ".")
}
