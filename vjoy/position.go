package vjoy

import "unsafe"

// Position mirrors the driver's JOYSTICK_POSITION_V2 block passed by pointer
// to UpdateVJD. Field order and widths match the native definition; the three
// pad bytes after Device make the C compiler's LONG alignment explicit.
// Axis values use the driver's 0x1-0x8000 range, continuous hats are in
// hundredths of a degree with ^uint32(0) meaning neutral.
type Position struct {
	Device uint8
	_      [3]byte

	Throttle int32
	Rudder   int32
	Aileron  int32

	AxisX    int32
	AxisY    int32
	AxisZ    int32
	AxisXRot int32
	AxisYRot int32
	AxisZRot int32
	Slider   int32
	Dial     int32
	Wheel    int32

	AxisVX   int32
	AxisVY   int32
	AxisVZ   int32
	AxisVBRX int32
	AxisVBRY int32
	AxisVBRZ int32

	// Buttons 1-32, one bit each, LSB = button 1.
	Buttons uint32

	// Hat switches. Hats holds either the discrete value for hat 1 or the
	// packed 4x discrete nibbles depending on driver configuration.
	Hats    uint32
	HatsEx1 uint32
	HatsEx2 uint32
	HatsEx3 uint32

	// Buttons 33-128.
	ButtonsEx1 uint32
	ButtonsEx2 uint32
	ButtonsEx3 uint32
}

// HatNeutral is the continuous-hat rest value.
const HatNeutral = ^uint32(0)

// positionSize is the native sizeof(JOYSTICK_POSITION_V2).
const positionSize = 108

// compile-time layout check against the native block size
var _ [positionSize]byte = [unsafe.Sizeof(Position{})]byte{}

func (p *Position) pointer() unsafe.Pointer { return unsafe.Pointer(p) }

// SetButton sets or clears one of the 128 button bits. Buttons are 1-based
// as in the native convention; out-of-range indices are ignored.
func (p *Position) SetButton(n uint16, pressed bool) {
	if n < 1 || n > 128 {
		return
	}
	idx := n - 1
	words := [...]*uint32{&p.Buttons, &p.ButtonsEx1, &p.ButtonsEx2, &p.ButtonsEx3}
	w := words[idx/32]
	bit := uint32(1) << (idx % 32)
	if pressed {
		*w |= bit
	} else {
		*w &^= bit
	}
}
