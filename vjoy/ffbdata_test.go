package vjoy

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFBDataMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		env  FFBData
	}{
		{name: "zero", env: FFBData{}},
		{name: "typical", env: FFBData{Size: 18, Cmd: 0x000D, Data: 0xDEADBEE0}},
		{name: "max fields", env: FFBData{Size: ^uint32(0), Cmd: ^uint32(0), Data: ^uintptr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.env.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, b, EncodedSize())

			var got FFBData
			require.NoError(t, got.UnmarshalBinary(b))
			assert.Equal(t, tt.env, got)

			// Re-encoding reproduces the identical byte sequence.
			b2, err := got.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, b, b2)
		})
	}
}

func TestFFBDataUnmarshalShortBuffer(t *testing.T) {
	var env FFBData
	assert.Error(t, env.UnmarshalBinary(make([]byte, EncodedSize()-1)))
}

func TestFFBDataPayloadBoundedBySize(t *testing.T) {
	backing := []byte{0x0D, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}

	// Declare fewer bytes than the backing buffer holds; the copy must stop
	// at the declared size.
	env := FFBData{
		Size: ffbHeaderSize + 4,
		Cmd:  1,
		Data: uintptr(unsafe.Pointer(&backing[0])),
	}
	got := env.Payload()
	assert.Equal(t, backing[:4], got)

	// The copy is independent of driver memory.
	backing[0] = 0xFF
	assert.Equal(t, byte(0x0D), got[0])
}

func TestFFBDataPayloadDegenerate(t *testing.T) {
	assert.Nil(t, (&FFBData{Size: ffbHeaderSize}).Payload())
	assert.Nil(t, (&FFBData{Size: 4}).Payload())
	assert.Nil(t, (&FFBData{Size: 100, Data: 0}).Payload())
}

func TestFFBDataAtMirrorsNativeLayout(t *testing.T) {
	backing := []byte{0xAA, 0xBB}
	native := FFBData{
		Size: ffbHeaderSize + 2,
		Cmd:  0x0C,
		Data: uintptr(unsafe.Pointer(&backing[0])),
	}

	view := FFBDataAt(uintptr(unsafe.Pointer(&native)))
	require.NotNil(t, view)
	assert.Equal(t, native.Size, view.Size)
	assert.Equal(t, native.Cmd, view.Cmd)
	assert.Equal(t, []byte{0xAA, 0xBB}, view.Payload())

	assert.Nil(t, FFBDataAt(0))
}

func TestPositionLayout(t *testing.T) {
	// The update block must match the native sizeof exactly; any drift
	// corrupts the foreign call.
	assert.Equal(t, uintptr(positionSize), unsafe.Sizeof(Position{}))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(Position{}.Throttle))
	assert.Equal(t, uintptr(76), unsafe.Offsetof(Position{}.Buttons))
}

func TestPositionSetButton(t *testing.T) {
	var p Position

	p.SetButton(1, true)
	assert.Equal(t, uint32(1), p.Buttons)

	p.SetButton(33, true)
	assert.Equal(t, uint32(1), p.ButtonsEx1)

	p.SetButton(128, true)
	assert.Equal(t, uint32(1)<<31, p.ButtonsEx3)

	p.SetButton(1, false)
	assert.Zero(t, p.Buttons)

	// Out of range is ignored.
	p.SetButton(0, true)
	p.SetButton(129, true)
	assert.Zero(t, p.Buttons)
	assert.Equal(t, uint32(1), p.ButtonsEx1)
}
