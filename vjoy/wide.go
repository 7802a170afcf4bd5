package vjoy

import (
	"unicode/utf16"
	"unsafe"
)

// goWideString copies a NUL-terminated UTF-16 string out of native memory.
// The driver's string queries return PWSTR regardless of platform; a NULL
// pointer means the query is unsupported and decodes to "".
func goWideString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var units []uint16
	for off := uintptr(0); ; off += 2 {
		c := *(*uint16)(unsafe.Pointer(p + off))
		if c == 0 {
			break
		}
		units = append(units, c)
	}
	return string(utf16.Decode(units))
}
