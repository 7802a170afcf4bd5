package vjoy

import (
	"encoding/binary"
	"io"
	"unsafe"
)

// ffbHeaderSize is the fixed part of FFB_DATA preceding the payload: the
// driver's Size field counts these 8 bytes plus the payload.
const ffbHeaderSize = 8

// ptrSize is the width of the native PVOID field. The two ULONG fields are
// 32-bit on the native platform regardless of pointer width.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// FFBData mirrors the native FFB_DATA structure byte for byte:
//
//	ULONG size;   // total report size including this 8-byte header
//	ULONG cmd;    // driver command word
//	PUCHAR data;  // borrowed payload pointer, Size-8 bytes long
//
// The Data pointer is owned by the driver and is only valid for the duration
// of the callback that delivered it; use Payload to copy what must outlive
// the callback.
type FFBData struct {
	Size uint32
	Cmd  uint32
	Data uintptr
}

// FFBDataAt reinterprets a raw pointer handed to the FFB callback as an
// FFBData view. The view borrows driver memory and must not be retained
// after the callback returns.
func FFBDataAt(p uintptr) *FFBData {
	if p == 0 {
		return nil
	}
	return (*FFBData)(unsafe.Pointer(p))
}

// Payload copies the report payload out of driver memory. The copy is bounded
// by the declared Size; a header-only or malformed envelope yields nil.
func (d *FFBData) Payload() []byte {
	if d.Data == 0 || d.Size <= ffbHeaderSize {
		return nil
	}
	n := int(d.Size) - ffbHeaderSize
	buf := make([]byte, n)
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(d.Data)), n))
	return buf
}

// EncodedSize returns the byte length of the fixed envelope on this platform.
func EncodedSize() int { return ffbHeaderSize + ptrSize }

// MarshalBinary encodes the envelope in native layout (little-endian, pointer
// field at its aligned offset).
func (d *FFBData) MarshalBinary() ([]byte, error) {
	b := make([]byte, ffbHeaderSize+ptrSize)
	binary.LittleEndian.PutUint32(b[0:4], d.Size)
	binary.LittleEndian.PutUint32(b[4:8], d.Cmd)
	if ptrSize == 8 {
		binary.LittleEndian.PutUint64(b[8:16], uint64(d.Data))
	} else {
		binary.LittleEndian.PutUint32(b[8:12], uint32(d.Data))
	}
	return b, nil
}

// UnmarshalBinary decodes a native-layout envelope.
func (d *FFBData) UnmarshalBinary(data []byte) error {
	if len(data) < ffbHeaderSize+ptrSize {
		return io.ErrUnexpectedEOF
	}
	d.Size = binary.LittleEndian.Uint32(data[0:4])
	d.Cmd = binary.LittleEndian.Uint32(data[4:8])
	if ptrSize == 8 {
		d.Data = uintptr(binary.LittleEndian.Uint64(data[8:16]))
	} else {
		d.Data = uintptr(binary.LittleEndian.Uint32(data[8:12]))
	}
	return nil
}
