//go:build darwin || freebsd || linux

package vjoy

// Non-Windows loading exists for ports of the interface library (and for
// exercising the load path under Wine-adjacent setups); the driver proper is
// a Windows component.

import "github.com/ebitengine/purego"

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}

func closeLibrary(lib uintptr) error {
	return purego.Dlclose(lib)
}
