package vjoy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrLibraryNotFound is returned by Open when no candidate path holds the
// interface library. Treat it as fatal; nothing else in this package works
// without the loaded library.
var ErrLibraryNotFound = errors.New("vjoy: interface library not found")

// libraryFileName returns the platform file name of the vJoy interface
// library.
func libraryFileName() string {
	switch runtime.GOOS {
	case "windows":
		return "vJoyInterface.dll"
	case "darwin":
		return "libvJoyInterface.dylib"
	default:
		return "libvJoyInterface.so"
	}
}

// locateLibrary returns the first directory in dirs containing the interface
// library. Order matters: callers list the working directory before the
// install directory so a local copy wins.
func locateLibrary(dirs ...string) (string, error) {
	name := libraryFileName()
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s not in [%s]", ErrLibraryNotFound, name, strings.Join(dirs, ", "))
}

// defaultSearchDirs is the documented discovery order: the process working
// directory, then the directory the running binary was installed to.
func defaultSearchDirs() []string {
	dirs := make([]string, 0, 2)
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}
