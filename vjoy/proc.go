package vjoy

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// procs is the foreign function table: one typed entry per exported
// vJoyInterface symbol. Widths follow the native declarations, not the
// documentation — notably GetVJDAxisExist returns an int even though the
// docs call it a BOOL (it can yield values outside 0/1, treat nonzero as
// "exists").
type procs struct {
	// General driver information
	getvJoyVersion            func() int16
	vJoyEnabled               func() bool
	getvJoyProductString      func() uintptr
	getvJoyManufacturerString func() uintptr
	getvJoySerialNumberString func() uintptr

	// Per-device properties
	getVJDButtonNumber  func(rid uint32) int32
	getVJDDiscPovNumber func(rid uint32) int32
	getVJDContPovNumber func(rid uint32) int32
	getVJDAxisExist     func(rid, axis uint32) int32
	getVJDAxisMax       func(rid, axis uint32, out *int32) bool
	getVJDAxisMin       func(rid, axis uint32, out *int32) bool

	// Device lifecycle
	getOwnerPid   func(rid uint32) int32
	acquireVJD    func(rid uint32) bool
	relinquishVJD func(rid uint32)
	updateVJD     func(rid uint32, pos unsafe.Pointer) bool
	getVJDStatus  func(rid uint32) int32

	// Resets
	resetVJD     func(rid uint32) bool
	resetAll     func()
	resetButtons func(rid uint32) bool
	resetPovs    func(rid uint32) bool

	// Value injection; native argument order is value first
	setAxis    func(value int32, rid, axis uint32) bool
	setBtn     func(value bool, rid uint32, btn uint8) bool
	setDiscPov func(value int32, rid uint32, pov uint8) bool
	setContPov func(value uint32, rid uint32, pov uint8) bool

	// FFB
	ffbStart         func(rid uint32) bool // deprecated upstream
	ffbStop          func(rid uint32) bool // deprecated upstream
	isDeviceFfb      func(rid uint32) bool
	ffbRegisterGenCB func(cb uintptr, userdata *uint32)
	ffbHType         func(packet unsafe.Pointer, typeOut *uint32) uint32
}

// bind resolves every symbol individually so an absent export fails at load
// time with the symbol name, then attaches the address to the typed entry.
func (p *procs) bind(lib uintptr) error {
	symbols := []struct {
		name string
		fn   any
	}{
		{"GetvJoyVersion", &p.getvJoyVersion},
		{"vJoyEnabled", &p.vJoyEnabled},
		{"GetvJoyProductString", &p.getvJoyProductString},
		{"GetvJoyManufacturerString", &p.getvJoyManufacturerString},
		{"GetvJoySerialNumberString", &p.getvJoySerialNumberString},

		{"GetVJDButtonNumber", &p.getVJDButtonNumber},
		{"GetVJDDiscPovNumber", &p.getVJDDiscPovNumber},
		{"GetVJDContPovNumber", &p.getVJDContPovNumber},
		{"GetVJDAxisExist", &p.getVJDAxisExist},
		{"GetVJDAxisMax", &p.getVJDAxisMax},
		{"GetVJDAxisMin", &p.getVJDAxisMin},

		{"GetOwnerPid", &p.getOwnerPid},
		{"AcquireVJD", &p.acquireVJD},
		{"RelinquishVJD", &p.relinquishVJD},
		{"UpdateVJD", &p.updateVJD},
		{"GetVJDStatus", &p.getVJDStatus},

		{"ResetVJD", &p.resetVJD},
		{"ResetAll", &p.resetAll},
		{"ResetButtons", &p.resetButtons},
		{"ResetPovs", &p.resetPovs},

		{"SetAxis", &p.setAxis},
		{"SetBtn", &p.setBtn},
		{"SetDiscPov", &p.setDiscPov},
		{"SetContPov", &p.setContPov},

		{"FfbStart", &p.ffbStart},
		{"FfbStop", &p.ffbStop},
		{"IsDeviceFfb", &p.isDeviceFfb},
		{"FfbRegisterGenCB", &p.ffbRegisterGenCB},
		{"Ffb_h_Type", &p.ffbHType},
	}
	for _, sym := range symbols {
		addr, err := lookupSymbol(lib, sym.name)
		if err != nil {
			return fmt.Errorf("vjoy: resolve symbol %s: %w", sym.name, err)
		}
		purego.RegisterFunc(sym.fn, addr)
	}
	return nil
}
