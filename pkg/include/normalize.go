package include

import (
	"os"
	"strings"
)

// separators are the path separators recognized by Normalize. Include
// directives always use '/', discovered paths use the OS separator.
const separators = "/" + string(os.PathSeparator)

// Normalize returns the graph identifier for the file at path: its base name
// with the final extension removed. A base name without a '.' is returned
// unchanged.
//
//	Normalize("src/net/socket.cpp") // "socket"
//	Normalize("archive.tar.gz")     // "archive.tar"
//	Normalize("Makefile")           // "Makefile"
//
// Normalize is idempotent on identifiers without a dot.
func Normalize(path string) string {
	name := path[strings.LastIndexAny(path, separators)+1:]
	if i := strings.LastIndexByte(name, '.'); i != -1 {
		return name[:i]
	}
	return name
}
