package vjoy

// DeviceState describes who, if anyone, currently holds a vJoy device slot.
// The values mirror the VjdStat codes returned by GetVJDStatus.
type DeviceState int32

const (
	StateOwned   DeviceState = 0 // owned by this process
	StateFree    DeviceState = 1 // configured but unclaimed
	StateBust    DeviceState = 2 // held by another process
	StateMissing DeviceState = 3 // slot not configured in the driver
	StateUnknown DeviceState = 4 // any status code the driver does not document
)

// DeviceStateFromCode classifies a raw status code. Codes outside 0-3 map to
// StateUnknown; status polling never fails on an undocumented code.
func DeviceStateFromCode(code int32) DeviceState {
	if code >= 0 && code < int32(StateUnknown) {
		return DeviceState(code)
	}
	return StateUnknown
}

func (s DeviceState) String() string {
	switch s {
	case StateOwned:
		return "owned"
	case StateFree:
		return "free"
	case StateBust:
		return "bust"
	case StateMissing:
		return "missing"
	default:
		return "unknown"
	}
}
