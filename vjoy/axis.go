package vjoy

// HID usage codes accepted by the axis calls (GetVJDAxisExist, SetAxis, ...).
const (
	AxisX       uint32 = 0x30
	AxisY       uint32 = 0x31
	AxisZ       uint32 = 0x32
	AxisRX      uint32 = 0x33
	AxisRY      uint32 = 0x34
	AxisRZ      uint32 = 0x35
	AxisSlider0 uint32 = 0x36
	AxisSlider1 uint32 = 0x37
	AxisWheel   uint32 = 0x38
	AxisPOV     uint32 = 0x39
)

// AxisName returns a short label for a HID axis usage, or "" if the usage is
// not one vJoy exposes.
func AxisName(usage uint32) string {
	switch usage {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisRX:
		return "rx"
	case AxisRY:
		return "ry"
	case AxisRZ:
		return "rz"
	case AxisSlider0:
		return "sl0"
	case AxisSlider1:
		return "sl1"
	case AxisWheel:
		return "whl"
	case AxisPOV:
		return "pov"
	default:
		return ""
	}
}
