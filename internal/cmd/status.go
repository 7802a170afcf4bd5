package cmd

import (
	"log/slog"
	"strings"

	"github.com/vjoyd/vjoyd/vjoy"
)

// maxDevices is the driver's device slot count.
const maxDevices = 16

// Status reports the live state of one or more devices. Without arguments
// it scans all 16 slots and skips the unconfigured ones.
type Status struct {
	libraryFlag
	Devices []uint32 `arg:"" optional:"" help:"Device ids (1-based); default scans all slots"`
	Ranges  bool     `help:"Include min/max for each present axis"`
}

func (c *Status) Run(logger *slog.Logger) error {
	lib, err := c.open()
	if err != nil {
		return err
	}

	ids := c.Devices
	scanning := len(ids) == 0
	if scanning {
		for rid := uint32(1); rid <= maxDevices; rid++ {
			ids = append(ids, rid)
		}
	}

	for _, rid := range ids {
		state := lib.Status(rid)
		if scanning && state == vjoy.StateMissing {
			continue
		}

		args := []any{
			"device", rid,
			"state", state.String(),
			"buttons", lib.ButtonCount(rid),
			"disc_povs", lib.DiscPovCount(rid),
			"cont_povs", lib.ContPovCount(rid),
			"ffb", lib.IsDeviceFfb(rid),
			"axes", presentAxes(lib, rid),
		}
		if state == vjoy.StateOwned || state == vjoy.StateBust {
			args = append(args, "owner_pid", lib.OwnerPid(rid))
		}
		logger.Info("device status", args...)

		if c.Ranges {
			c.logRanges(logger, lib, rid)
		}
	}
	return nil
}

func presentAxes(lib *vjoy.Library, rid uint32) string {
	var names []string
	for _, a := range axisUsages {
		if lib.AxisExists(rid, a.usage) {
			names = append(names, a.name)
		}
	}
	return strings.Join(names, ",")
}

func (c *Status) logRanges(logger *slog.Logger, lib *vjoy.Library, rid uint32) {
	for _, a := range axisUsages {
		if !lib.AxisExists(rid, a.usage) {
			continue
		}
		min, max, err := lib.AxisRange(rid, a.usage)
		if err != nil {
			logger.Warn("axis range query failed", "device", rid, "axis", a.name, "error", err)
			continue
		}
		logger.Info("axis range", "device", rid, "axis", a.name, "min", min, "max", max)
	}
}
