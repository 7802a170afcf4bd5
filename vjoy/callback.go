package vjoy

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"
)

// FFBHandler receives FFB reports from the driver. Both arguments are the
// raw pointer-sized values of the native callback: data points at an
// FFB_DATA envelope (see FFBDataAt), userdata at the device id registered
// with it. The driver invokes handlers on a thread it owns — concurrently
// with anything else in the process — so handlers must synchronize any
// shared state themselves and must copy payload bytes they keep.
type FFBHandler func(data, userdata uintptr)

// The driver exposes a single process-wide callback slot and no way to
// unregister, so the purego trampoline is created exactly once and never
// released. Handler replacement is an atomic swap on the cell the
// trampoline reads; a replaced handler may still observe calls that were
// in flight when the swap happened, but none issued after it.
// ffbMu serializes registrations; it is package-level like the slot it
// guards, so registrations through different Library values still order.
var (
	ffbMu          sync.Mutex
	ffbHandler     atomic.Pointer[FFBHandler]
	trampolineOnce sync.Once
	trampolineAddr uintptr
)

// ffbDispatch is the Go side of the native trampoline. Exercised directly by
// tests; the driver reaches it through the purego callback.
func ffbDispatch(data, userdata uintptr) uintptr {
	if h := ffbHandler.Load(); h != nil {
		(*h)(data, userdata)
	}
	return 0
}

func ffbTrampoline() uintptr {
	trampolineOnce.Do(func() {
		trampolineAddr = purego.NewCallback(ffbDispatch)
	})
	return trampolineAddr
}
