// Package vjoy binds the vJoy virtual-joystick driver's interface library.
//
// The package maps every exported entry point of vJoyInterface into a typed
// call on a Library, converts the driver's status and FFB report codes into
// Go types, and bridges the driver's FFB callback into process code. All
// calls are synchronous foreign calls on the caller's goroutine; the one
// asynchronous surface is the FFB callback, which the driver invokes on a
// thread of its own (see FFBHandler).
//
// Device exclusivity (Acquire/Relinquish) is enforced by the driver, not by
// in-process locking; handles are plain 1-based slot numbers whose lifetime
// belongs to the driver configuration.
package vjoy

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

// ErrCallFailed is wrapped by every method whose native call reports plain
// failure. The driver gives no diagnostic beyond the boolean, so neither do
// we; common causes are an unacquired device or an out-of-range index.
var ErrCallFailed = errors.New("vjoy: native call rejected")

func callFailed(op string, rid uint32) error {
	return fmt.Errorf("%w: %s (device %d)", ErrCallFailed, op, rid)
}

// Library is a loaded vJoy interface library with every symbol resolved.
// Values are safe for concurrent use; the underlying native calls carry
// whatever atomicity the driver gives them.
type Library struct {
	handle uintptr
	path   string
	procs  procs

	// ffbDevice is the id cell whose address is handed to the driver at
	// callback registration. It lives here so the pointer stays valid for
	// as long as the driver may read it.
	ffbDevice uint32
}

// Open locates the interface library in the default search order (working
// directory first, then the executable's directory) and loads it. Absence of
// the library or of any expected symbol is fatal to initialization: the
// returned error wraps ErrLibraryNotFound or names the missing symbol, and
// no partially bound Library is ever returned.
func Open() (*Library, error) {
	path, err := locateLibrary(defaultSearchDirs()...)
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath loads the interface library from an explicit path.
func OpenPath(path string) (*Library, error) {
	h, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("vjoy: load %s: %w", path, err)
	}
	l := &Library{handle: h, path: path}
	if err := l.procs.bind(h); err != nil {
		_ = closeLibrary(h)
		return nil, err
	}
	return l, nil
}

var defaultLib = sync.OnceValues(Open)

// Default returns the process-wide Library, loading it on first use. The
// load happens exactly once; every later call observes the same result.
// Callers that want explicit lifecycle control should use Open and pass the
// Library around instead.
func Default() (*Library, error) { return defaultLib() }

// Path returns the file the library was loaded from.
func (l *Library) Path() string { return l.path }

// Version returns the driver interface version word.
func (l *Library) Version() int16 { return l.procs.getvJoyVersion() }

// Enabled reports whether the vJoy driver is installed and enabled.
func (l *Library) Enabled() bool { return l.procs.vJoyEnabled() }

// ProductString returns the driver's product string, or "" if unsupported.
func (l *Library) ProductString() string {
	return goWideString(l.procs.getvJoyProductString())
}

// ManufacturerString returns the driver's manufacturer string, or "".
func (l *Library) ManufacturerString() string {
	return goWideString(l.procs.getvJoyManufacturerString())
}

// SerialNumberString returns the driver's serial number string, or "".
func (l *Library) SerialNumberString() string {
	return goWideString(l.procs.getvJoySerialNumberString())
}

// ButtonCount returns the number of buttons configured on a device, or a
// negative driver error code.
func (l *Library) ButtonCount(rid uint32) int32 { return l.procs.getVJDButtonNumber(rid) }

// DiscPovCount returns the number of discrete (4-way) hat switches.
func (l *Library) DiscPovCount(rid uint32) int32 { return l.procs.getVJDDiscPovNumber(rid) }

// ContPovCount returns the number of continuous (360°) hat switches.
func (l *Library) ContPovCount(rid uint32) int32 { return l.procs.getVJDContPovNumber(rid) }

// AxisExistRaw exposes GetVJDAxisExist as the driver actually implements
// it: an int, not the BOOL the documentation claims. Values other than 0
// and 1 occur in the wild; only zero means absent.
func (l *Library) AxisExistRaw(rid, axis uint32) int32 {
	return l.procs.getVJDAxisExist(rid, axis)
}

// AxisExists reports whether a device exposes the given HID axis usage.
func (l *Library) AxisExists(rid, axis uint32) bool {
	return l.AxisExistRaw(rid, axis) != 0
}

// AxisRange returns the configured min and max for an axis. The native calls
// write through out-pointers and report failure for unknown device/axis
// combinations.
func (l *Library) AxisRange(rid, axis uint32) (min, max int32, err error) {
	if !l.procs.getVJDAxisMin(rid, axis, &min) {
		return 0, 0, callFailed("get axis min", rid)
	}
	if !l.procs.getVJDAxisMax(rid, axis, &max) {
		return 0, 0, callFailed("get axis max", rid)
	}
	return min, max, nil
}

// OwnerPid returns the pid of the process owning a device, or a negative
// driver error code (device free, missing, or bad id).
func (l *Library) OwnerPid(rid uint32) int32 { return l.procs.getOwnerPid(rid) }

// Acquire claims exclusive use of a device. The driver may block briefly
// while the claim is arbitrated.
func (l *Library) Acquire(rid uint32) error {
	if !l.procs.acquireVJD(rid) {
		return callFailed("acquire", rid)
	}
	return nil
}

// Relinquish releases a device. The native call returns nothing; release is
// assumed to succeed.
func (l *Library) Relinquish(rid uint32) { l.procs.relinquishVJD(rid) }

// Update pushes a full state snapshot to an acquired device.
func (l *Library) Update(rid uint32, pos *Position) error {
	if !l.procs.updateVJD(rid, pos.pointer()) {
		return callFailed("update", rid)
	}
	return nil
}

// Status queries the live ownership state of a device. Undocumented status
// codes classify as StateUnknown; this query never fails.
func (l *Library) Status(rid uint32) DeviceState {
	return DeviceStateFromCode(l.procs.getVJDStatus(rid))
}

// Reset restores a device's controls to their default values.
func (l *Library) Reset(rid uint32) error {
	if !l.procs.resetVJD(rid) {
		return callFailed("reset", rid)
	}
	return nil
}

// ResetAll resets every configured device.
func (l *Library) ResetAll() { l.procs.resetAll() }

// ResetButtons releases all buttons on a device.
func (l *Library) ResetButtons(rid uint32) error {
	if !l.procs.resetButtons(rid) {
		return callFailed("reset buttons", rid)
	}
	return nil
}

// ResetPovs centers all hat switches on a device.
func (l *Library) ResetPovs(rid uint32) error {
	if !l.procs.resetPovs(rid) {
		return callFailed("reset povs", rid)
	}
	return nil
}

// SetAxis writes one axis value. Argument order follows the native entry
// point: value first.
func (l *Library) SetAxis(value int32, rid, axis uint32) error {
	if !l.procs.setAxis(value, rid, axis) {
		return callFailed("set axis", rid)
	}
	return nil
}

// SetButton presses or releases one button (1-based index).
func (l *Library) SetButton(value bool, rid uint32, btn uint8) error {
	if !l.procs.setBtn(value, rid, btn) {
		return callFailed("set button", rid)
	}
	return nil
}

// SetDiscPov points a discrete hat: -1 neutral, 0 north through 3 west.
func (l *Library) SetDiscPov(value int32, rid uint32, pov uint8) error {
	if !l.procs.setDiscPov(value, rid, pov) {
		return callFailed("set disc pov", rid)
	}
	return nil
}

// SetContPov points a continuous hat in hundredths of a degree, HatNeutral
// for rest.
func (l *Library) SetContPov(value uint32, rid uint32, pov uint8) error {
	if !l.procs.setContPov(value, rid, pov) {
		return callFailed("set cont pov", rid)
	}
	return nil
}

// FfbStart enables the FFB mechanism for a device.
//
// Deprecated: the driver starts FFB automatically for FFB-enabled devices;
// retained only for compatibility with old call sites.
func (l *Library) FfbStart(rid uint32) error {
	if !l.procs.ffbStart(rid) {
		return callFailed("ffb start", rid)
	}
	return nil
}

// FfbStop disables the FFB mechanism for a device.
//
// Deprecated: see FfbStart.
func (l *Library) FfbStop(rid uint32) error {
	if !l.procs.ffbStop(rid) {
		return callFailed("ffb stop", rid)
	}
	return nil
}

// IsDeviceFfb reports whether a device is configured for force feedback.
func (l *Library) IsDeviceFfb(rid uint32) bool { return l.procs.isDeviceFfb(rid) }

// RegisterFFB installs handler as the process's FFB callback, associated
// with the given device id. The driver has one global callback slot and no
// unregister call: registering again replaces the handler atomically (the
// native side keeps pointing at the same trampoline), and registration is
// otherwise permanent for the life of the process. The slot is shared by
// every Library value, so a registration through one Library replaces one
// made through another; only the device id cell is per-Library.
func (l *Library) RegisterFFB(handler FFBHandler, rid uint32) {
	ffbMu.Lock()
	defer ffbMu.Unlock()
	ffbHandler.Store(&handler)
	l.ffbDevice = rid
	l.procs.ffbRegisterGenCB(ffbTrampoline(), &l.ffbDevice)
}

// DecodePacketType extracts and converts the report type of a raw FFB
// packet pointer as delivered to the callback. A nonzero native return or a
// code outside the known set yields an error naming the offending value.
func (l *Library) DecodePacketType(packet uintptr) (PacketType, error) {
	var code uint32
	if rc := l.procs.ffbHType(unsafe.Pointer(packet), &code); rc != 0 {
		return 0, fmt.Errorf("vjoy: Ffb_h_Type failed with code %d", rc)
	}
	return PacketTypeFromCode(code)
}
